package order

import (
	"fmt"

	"tubertreats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Placed ──> Delivered
//
// Status is not stored on the Order; it is derived from whether a delivery
// time has been recorded.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Placed is the status of an order that has not been delivered yet.
	Placed

	// Delivered indicates that a delivery time has been recorded.
	// Completing a delivered order again only moves the delivery time forward.
	Delivered
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Placed:
		return "Placed"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status value is one of Placed or Delivered.
func (s Status) Validate() error {
	if s != Placed && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - Placed -> Delivered (first completion)
//   - Delivered -> Delivered (completion repeated, delivery time refreshed)
//
// Unknown cannot be completed.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}
