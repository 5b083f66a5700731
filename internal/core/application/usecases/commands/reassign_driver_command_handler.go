package commands

import (
	"context"

	"tubertreats/internal/core/domain/model/order"
)

// ReassignDriverCommandHandler overwrites the driver of an order.
//
// Example:
//
//	handler := NewReassignDriverCommandHandler(uowFactory)
//	cmd, _ := NewReassignDriverCommand(orderID, &driverID)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no order with that id
//	}
type ReassignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReassignDriverCommandHandler(uowFactory OrderUoWFactory) ReassignDriverCommandHandler {
	return ReassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, changes its driver and saves it.
// Returns errs.ErrObjectNotFound if the order does not exist.
func (h ReassignDriverCommandHandler) Handle(ctx context.Context, cmd ReassignDriverCommand) (*order.Order, error) {
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

	if err = o.ReassignDriver(cmd.DriverID()); err != nil {
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
