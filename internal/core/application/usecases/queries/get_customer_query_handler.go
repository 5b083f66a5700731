package queries

import (
	"context"

	"tubertreats/internal/core/ports"
	"tubertreats/internal/pkg/errs"
)

type GetCustomerQueryHandler struct {
	store ports.ReadStore
}

func NewGetCustomerQueryHandler(store ports.ReadStore) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{store: store}
}

// Handle returns the customer with its orders, each with toppings.
// Returns errs.ErrObjectNotFound if the customer does not exist.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var resp CustomerResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		c, ok := s.Customer(query.CustomerID())
		if !ok {
			return errs.NewObjectNotFoundError("customer", query.CustomerID())
		}
		resp = newProjector(s).customer(c)
		return nil
	})
	if err != nil {
		return CustomerResponse{}, err
	}

	return resp, nil
}
