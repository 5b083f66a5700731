package queries

import (
	"context"

	"tubertreats/internal/core/ports"
)

type GetAllCustomersQueryHandler struct {
	store ports.ReadStore
}

func NewGetAllCustomersQueryHandler(store ports.ReadStore) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{store: store}
}

func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var customers []CustomerResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		all := s.Customers()
		customers = make([]CustomerResponse, 0, len(all))
		for _, c := range all {
			customers = append(customers, NewCustomerResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customers, nil
}
