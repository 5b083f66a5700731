package commands

import (
	"context"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler records the delivery time of an order.
// Completing an order again moves its delivery time to the current time.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stamps the order as delivered at the clock's current time.
// Returns errs.ErrObjectNotFound if the order does not exist.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Complete(h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
