package queries

import (
	"context"

	"tubertreats/internal/core/ports"
	"tubertreats/internal/pkg/errs"
)

type GetDriverQueryHandler struct {
	store ports.ReadStore
}

func NewGetDriverQueryHandler(store ports.ReadStore) GetDriverQueryHandler {
	return GetDriverQueryHandler{store: store}
}

// Handle returns the driver with its deliveries, each with toppings.
// Returns errs.ErrObjectNotFound if the driver does not exist.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	var resp DriverResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		d, ok := s.Driver(query.DriverID())
		if !ok {
			return errs.NewObjectNotFoundError("driver", query.DriverID())
		}
		resp = newProjector(s).driver(d)
		return nil
	})
	if err != nil {
		return DriverResponse{}, err
	}

	return resp, nil
}
