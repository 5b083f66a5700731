package commands

import (
	"context"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders. The store assigns the
// identifier and the clock supplies the placement time.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores a new undelivered order and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, cmd.CustomerID(), cmd.DriverID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
