package queries

import (
	"errors"

	"tubertreats/internal/pkg/guard"
)

var ErrGetAllToppingsQueryIsNotConstructed = errors.New(
	"GetAllToppingsQuery must be created via NewGetAllToppingsQuery constructor",
)

// GetAllToppingsQuery lists the topping catalogue.
type GetAllToppingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllToppingsQuery() GetAllToppingsQuery {
	return GetAllToppingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllToppingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllToppingsQueryIsNotConstructed)
}
