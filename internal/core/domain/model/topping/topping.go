// Package topping provides the Topping aggregate, the read-only catalogue of
// extras that can be attached to an order.
package topping

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
)

var ErrToppingIsNotConstructed = errors.New("Topping must be created via NewTopping constructor")

type Topping struct {
	id   kernel.ID
	name string

	isConstructed bool
}

func NewTopping(id kernel.ID, name string) (*Topping, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Topping{id: id, name: name, isConstructed: true}, nil
}

func (t *Topping) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrToppingIsNotConstructed
	}
	return nil
}

func (t *Topping) ID() kernel.ID {
	return t.id
}

func (t *Topping) Name() string {
	return t.name
}

func (t *Topping) Clone() *Topping {
	cp := *t
	return &cp
}
