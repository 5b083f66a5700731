package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Neither the customer nor the driver is checked for existence.
//
// Example:
//
//	driverID := kernel.MustNewID(2)
//	cmd, err := NewCreateOrderCommand(kernel.MustNewID(3), &driverID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	customerID kernel.ID
	driverID   *kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The driver may be nil.
func NewCreateOrderCommand(customerID kernel.ID, driverID *kernel.ID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
	if driverID != nil {
		id := *driverID
		cmd.driverID = &id
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// DriverID returns the requested driver, or nil if none was given.
func (c CreateOrderCommand) DriverID() *kernel.ID {
	if c.driverID == nil {
		return nil
	}
	id := *c.driverID
	return &id
}
