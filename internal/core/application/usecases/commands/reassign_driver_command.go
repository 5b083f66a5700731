package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
	"tubertreats/internal/pkg/guard"
)

var ErrReassignDriverCommandIsNotConstructed = errors.New(
	"ReassignDriverCommand must be created via NewReassignDriverCommand constructor",
)

// ReassignDriverCommand points an existing order at another driver, or clears
// the driver when none is given. Only the driver changes; the driver is not
// checked for existence.
type ReassignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	driverID *kernel.ID

	guard guard.ConstructorGuard
}

// NewReassignDriverCommand reports a non-positive order id as a missing order.
func NewReassignDriverCommand(orderID kernel.ID, driverID *kernel.ID) (ReassignDriverCommand, error) {
	cmd := ReassignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReassignDriverCommand{}, err
	}
	cmd.setDriverID(driverID)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrReassignDriverCommandIsNotConstructed)
}

func (c ReassignDriverCommand) OrderID() kernel.ID {
	return c.orderID
}

// DriverID returns a copy of the new driver, or nil to clear it.
func (c ReassignDriverCommand) DriverID() *kernel.ID {
	if c.driverID == nil {
		return nil
	}
	id := *c.driverID
	return &id
}

func (c *ReassignDriverCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}
	c.orderID = orderID
	return nil
}

func (c *ReassignDriverCommand) setDriverID(driverID *kernel.ID) {
	if driverID == nil {
		c.driverID = nil
		return
	}
	id := *driverID
	c.driverID = &id
}
