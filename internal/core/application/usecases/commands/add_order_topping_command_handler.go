package commands

import (
	"context"

	"tubertreats/internal/core/domain/model/ordertopping"
)

// AddOrderToppingCommandHandler appends a new association with a store-assigned id.
type AddOrderToppingCommandHandler struct {
	uowFactory OrderToppingUoWFactory
}

func NewAddOrderToppingCommandHandler(uowFactory OrderToppingUoWFactory) AddOrderToppingCommandHandler {
	return AddOrderToppingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the association and returns it.
func (h AddOrderToppingCommandHandler) Handle(
	ctx context.Context,
	cmd AddOrderToppingCommand,
) (*ordertopping.OrderTopping, error) {
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

	repo := uow.OrderToppingRepository()
	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	association, err := ordertopping.NewOrderTopping(id, cmd.OrderID(), cmd.ToppingID())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, association); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return association, nil
}
