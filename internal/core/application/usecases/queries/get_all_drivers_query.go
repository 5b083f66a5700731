package queries

import (
	"errors"

	"tubertreats/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery lists drivers without their deliveries.
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}
