package queries

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
	"tubertreats/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery fetches a driver together with the orders assigned to it.
type GetDriverQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDriverQuery(driverID kernel.ID) (GetDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverQuery{}, errs.NewObjectNotFoundErrorWithCause("driver", driverID, err)
	}

	return GetDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) DriverID() kernel.ID {
	return q.driverID
}
