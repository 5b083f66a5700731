package queries

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
	"tubertreats/internal/pkg/guard"
)

var ErrGetToppingQueryIsNotConstructed = errors.New(
	"GetToppingQuery must be created via NewGetToppingQuery constructor",
)

// GetToppingQuery fetches one topping.
type GetToppingQuery struct {
	toppingID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetToppingQuery(toppingID kernel.ID) (GetToppingQuery, error) {
	if err := toppingID.Validate(); err != nil {
		return GetToppingQuery{}, errs.NewObjectNotFoundErrorWithCause("topping", toppingID, err)
	}

	return GetToppingQuery{
		toppingID: toppingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetToppingQuery) Validate() error {
	return q.guard.Validate(ErrGetToppingQueryIsNotConstructed)
}

func (q GetToppingQuery) ToppingID() kernel.ID {
	return q.toppingID
}
