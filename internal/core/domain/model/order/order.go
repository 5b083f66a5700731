package order

import (
	"errors"
	"time"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's order. It is the aggregate root for the order
// lifecycle from placement to delivery.
//
// Order follows these invariants:
//   - Must have a valid store-assigned identifier
//   - Must carry the time it was placed
//   - The delivery time, once recorded, only moves forward
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the store-assigned identifier
	id kernel.ID

	// placedOn is the server time at which the order was created
	placedOn time.Time

	// customerID references the ordering customer; it is not checked for existence
	customerID kernel.ID

	// driverID references the delivering driver (nil if none was given)
	driverID *kernel.ID

	// deliveredOn is the delivery time (nil while the order is not delivered)
	deliveredOn *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed Order. The delivery time starts empty.
//
// Parameters:
//   - id: identifier assigned by the store (must be positive)
//   - customerID: the ordering customer, stored as given
//   - driverID: the assigned driver, stored as given (may be nil)
//   - placedOn: the server time of placement (must be set)
//
// Example:
//
//	o, err := order.NewOrder(nextID, customerID, &driverID, clock.Now())
//	if err != nil {
//	    return nil, err
//	}
func NewOrder(id kernel.ID, customerID kernel.ID, driverID *kernel.ID, placedOn time.Time) (*Order, error) {
	return RestoreOrder(id, placedOn, customerID, driverID, nil)
}

// RestoreOrder rebuilds an Order from stored state, including its delivery time.
// NewOrder delegates to it with no delivery time.
func RestoreOrder(
	id kernel.ID,
	placedOn time.Time,
	customerID kernel.ID,
	driverID *kernel.ID,
	deliveredOn *time.Time,
) (*Order, error) {
	o := &Order{
		customerID:    customerID,
		driverID:      copyID(driverID),
		deliveredOn:   copyTime(deliveredOn),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPlacedOn(placedOn),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// PlacedOn returns the time the order was placed.
func (o *Order) PlacedOn() time.Time {
	return o.placedOn
}

// CustomerID returns the referenced customer.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// DriverID returns a copy of the referenced driver, or nil if none is set.
func (o *Order) DriverID() *kernel.ID {
	return copyID(o.driverID)
}

// IsDeliveredBy reports whether the order references the given driver.
func (o *Order) IsDeliveredBy(driverID kernel.ID) bool {
	return o.driverID != nil && *o.driverID == driverID
}

// DeliveredOn returns a copy of the delivery time, or nil while undelivered.
func (o *Order) DeliveredOn() *time.Time {
	return copyTime(o.deliveredOn)
}

// Status derives the lifecycle state from the delivery time.
func (o *Order) Status() Status {
	if o.deliveredOn == nil {
		return Placed
	}
	return Delivered
}

// ReassignDriver points the order at another driver; a nil driver leaves the
// order unassigned. Nothing else changes: placement time, customer and
// delivery time stay as they are, and the driver is not checked for existence.
func (o *Order) ReassignDriver(driverID *kernel.ID) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.driverID = copyID(driverID)
	return nil
}

// Complete records the delivery time. It may be called on an already
// delivered order; the stamp then moves to the new time. A time earlier than
// the recorded one leaves the stamp unchanged.
//
// Example:
//
//	if err := o.Complete(clock.Now()); err != nil {
//	    return nil, err
//	}
//	// o.Status() == order.Delivered
func (o *Order) Complete(at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveredOn")
	}

	if _, err := o.Status().Complete(); err != nil {
		return err
	}

	if o.deliveredOn != nil && at.Before(*o.deliveredOn) {
		return nil
	}

	o.deliveredOn = &at
	return nil
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	cp := *o
	cp.driverID = copyID(o.driverID)
	cp.deliveredOn = copyTime(o.deliveredOn)
	return &cp
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPlacedOn(placedOn time.Time) error {
	if placedOn.IsZero() {
		return errs.NewValueIsRequiredError("placedOn")
	}
	o.placedOn = placedOn
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
