package commands

import (
	"errors"

	"tubertreats/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer. Name and address are stored as given.
type CreateCustomerCommand struct {
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name string, address string) (CreateCustomerCommand, error) {
	return CreateCustomerCommand{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Address() string {
	return c.address
}
