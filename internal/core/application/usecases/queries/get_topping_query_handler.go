package queries

import (
	"context"

	"tubertreats/internal/core/ports"
	"tubertreats/internal/pkg/errs"
)

type GetToppingQueryHandler struct {
	store ports.ReadStore
}

func NewGetToppingQueryHandler(store ports.ReadStore) GetToppingQueryHandler {
	return GetToppingQueryHandler{store: store}
}

// Handle returns errs.ErrObjectNotFound if the topping does not exist.
func (h GetToppingQueryHandler) Handle(ctx context.Context, query GetToppingQuery) (ToppingResponse, error) {
	if err := query.Validate(); err != nil {
		return ToppingResponse{}, err
	}

	var resp ToppingResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		t, ok := s.Topping(query.ToppingID())
		if !ok {
			return errs.NewObjectNotFoundError("topping", query.ToppingID())
		}
		resp = NewToppingResponse(t)
		return nil
	})
	if err != nil {
		return ToppingResponse{}, err
	}

	return resp, nil
}
