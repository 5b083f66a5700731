package commands

import (
	"context"
)

// DeleteCustomerCommandHandler removes customers. Deleting an unknown customer
// succeeds and changes nothing.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CustomerRepository().Remove(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
