package queries

import (
	"context"

	"tubertreats/internal/core/ports"
	"tubertreats/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	store ports.ReadStore
}

func NewGetOrderQueryHandler(store ports.ReadStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle returns the order with its toppings and delivery time.
// Returns errs.ErrObjectNotFound if the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		o, ok := s.Order(query.OrderID())
		if !ok {
			return errs.NewObjectNotFoundError("order", query.OrderID())
		}
		resp = newProjector(s).order(o)
		return nil
	})
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
