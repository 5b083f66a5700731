// Package customer provides the Customer aggregate: someone who places orders.
package customer

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is identified by a store-assigned ID and carries a delivery address.
// Deleting a customer does not touch the orders that reference it.
type Customer struct {
	id      kernel.ID
	name    string
	address string

	isConstructed bool
}

// NewCustomer creates a Customer. Name and address are stored as given.
func NewCustomer(id kernel.ID, name string, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		name:          name,
		address:       address,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}

// Clone returns an independent copy of the customer.
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}
