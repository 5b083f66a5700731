package queries

import (
	"context"

	"tubertreats/internal/core/ports"
)

// GetAllOrdersQueryHandler lists orders in collection order.
type GetAllOrdersQueryHandler struct {
	store ports.ReadStore
}

func NewGetAllOrdersQueryHandler(store ports.ReadStore) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{store: store}
}

// Handle returns every order with its toppings. The delivery time is left out
// of every listed order; fetch a single order to see it.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []OrderResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		p := newProjector(s)
		all := s.Orders()

		orders = make([]OrderResponse, 0, len(all))
		for _, o := range all {
			resp := p.order(o)
			resp.DeliveredOn = nil
			orders = append(orders, resp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
