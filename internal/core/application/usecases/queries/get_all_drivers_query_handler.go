package queries

import (
	"context"

	"tubertreats/internal/core/ports"
)

type GetAllDriversQueryHandler struct {
	store ports.ReadStore
}

func NewGetAllDriversQueryHandler(store ports.ReadStore) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{store: store}
}

func (h GetAllDriversQueryHandler) Handle(ctx context.Context, query GetAllDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var drivers []DriverResponse
	err := h.store.View(ctx, func(s ports.Snapshot) error {
		all := s.Drivers()
		drivers = make([]DriverResponse, 0, len(all))
		for _, d := range all {
			drivers = append(drivers, NewDriverResponse(d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return drivers, nil
}
