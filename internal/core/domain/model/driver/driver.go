// Package driver provides the Driver aggregate. Drivers exist only as seed data
// and are never created or deleted at runtime.
package driver

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver delivers orders. Orders reference drivers by ID.
type Driver struct {
	id   kernel.ID
	name string

	isConstructed bool
}

func NewDriver(id kernel.ID, name string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Driver{id: id, name: name, isConstructed: true}, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Clone() *Driver {
	cp := *d
	return &cp
}
