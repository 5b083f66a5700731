package queries

import (
	"context"

	"tubertreats/internal/core/ports"
)

type GetAllToppingsQueryHandler struct {
	store ports.ReadStore
}

func NewGetAllToppingsQueryHandler(store ports.ReadStore) GetAllToppingsQueryHandler {
	return GetAllToppingsQueryHandler{store: store}
}

func (h GetAllToppingsQueryHandler) Handle(ctx context.Context, query GetAllToppingsQuery) ([]ToppingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var toppings []ToppingResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		all := s.Toppings()
		toppings = make([]ToppingResponse, 0, len(all))
		for _, t := range all {
			toppings = append(toppings, NewToppingResponse(t))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toppings, nil
}
