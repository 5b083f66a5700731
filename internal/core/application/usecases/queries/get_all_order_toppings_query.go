package queries

import (
	"errors"

	"tubertreats/internal/pkg/guard"
)

var ErrGetAllOrderToppingsQueryIsNotConstructed = errors.New(
	"GetAllOrderToppingsQuery must be created via NewGetAllOrderToppingsQuery constructor",
)

// GetAllOrderToppingsQuery lists the raw order/topping associations.
type GetAllOrderToppingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllOrderToppingsQuery() GetAllOrderToppingsQuery {
	return GetAllOrderToppingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllOrderToppingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrderToppingsQueryIsNotConstructed)
}
