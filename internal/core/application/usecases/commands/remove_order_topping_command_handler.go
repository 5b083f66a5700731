package commands

import (
	"context"
)

// RemoveOrderToppingCommandHandler deletes an association.
// An unknown association id is not an error.
type RemoveOrderToppingCommandHandler struct {
	uowFactory OrderToppingUoWFactory
}

func NewRemoveOrderToppingCommandHandler(uowFactory OrderToppingUoWFactory) RemoveOrderToppingCommandHandler {
	return RemoveOrderToppingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveOrderToppingCommandHandler) Handle(ctx context.Context, cmd RemoveOrderToppingCommand) error {
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

	if err := uow.OrderToppingRepository().Remove(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
