package kernel

import (
	"fmt"
	"strconv"

	"tubertreats/internal/pkg/errs"
)

// ID identifies a record within one collection. Identifiers are assigned by the
// store as one more than the largest identifier already present, so a valid ID
// is always positive. The zero value is invalid.
type ID int

// NewID converts a raw integer, typically parsed from a request, into an ID.
//
// Example:
//
//	id, err := kernel.NewID(3)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func NewID(value int) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// MustNewID is NewID for literals known to be valid, such as seed rows.
func MustNewID(value int) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate reports whether the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int(id)))
	}
	return nil
}

// Int returns the identifier as a plain int for wire formats.
func (id ID) Int() int {
	return int(id)
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}
