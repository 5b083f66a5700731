package commands

import (
	"context"

	"tubertreats/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler stores new customers with a store-assigned id.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the customer and returns it.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := customer.NewCustomer(id, cmd.Name(), cmd.Address())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
