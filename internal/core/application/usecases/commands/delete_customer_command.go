package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer. Orders placed by the customer are kept.
type DeleteCustomerCommand struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand accepts any id; removing an id that is not stored is a no-op.
func NewDeleteCustomerCommand(customerID kernel.ID) DeleteCustomerCommand {
	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}
