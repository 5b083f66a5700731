package queries

import (
	"errors"

	"tubertreats/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery lists customers without their orders.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}
