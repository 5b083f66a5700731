package queries

import (
	"context"

	"tubertreats/internal/core/ports"
)

type GetAllOrderToppingsQueryHandler struct {
	store ports.ReadStore
}

func NewGetAllOrderToppingsQueryHandler(store ports.ReadStore) GetAllOrderToppingsQueryHandler {
	return GetAllOrderToppingsQueryHandler{store: store}
}

func (h GetAllOrderToppingsQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrderToppingsQuery,
) ([]OrderToppingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var associations []OrderToppingResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		all := s.OrderToppings()
		associations = make([]OrderToppingResponse, 0, len(all))
		for _, ot := range all {
			associations = append(associations, NewOrderToppingResponse(ot))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return associations, nil
}
