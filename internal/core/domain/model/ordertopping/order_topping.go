// Package ordertopping provides the OrderTopping join entity, which records that
// a topping is included on an order.
//
// An order's topping set is never stored on the order itself. It is always the
// set of toppings reachable through OrderTopping rows carrying the order's ID.
// Rows are created and removed, never updated. Neither reference is checked for
// existence, and the same topping may be attached to an order more than once;
// every attachment gets its own ID.
package ordertopping

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
)

var ErrOrderToppingIsNotConstructed = errors.New(
	"OrderTopping must be created via NewOrderTopping constructor",
)

// OrderTopping links one order to one topping.
type OrderTopping struct {
	id        kernel.ID
	orderID   kernel.ID
	toppingID kernel.ID

	isConstructed bool
}

// NewOrderTopping creates an association with a store-assigned ID.
//
// Example:
//
//	ot, err := ordertopping.NewOrderTopping(nextID, orderID, toppingID)
//	if err != nil {
//	    return nil, err
//	}
func NewOrderTopping(id kernel.ID, orderID kernel.ID, toppingID kernel.ID) (*OrderTopping, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &OrderTopping{
		id:            id,
		orderID:       orderID,
		toppingID:     toppingID,
		isConstructed: true,
	}, nil
}

// Validate ensures the association was created through NewOrderTopping.
func (ot *OrderTopping) Validate() error {
	if ot == nil || !ot.isConstructed {
		return ErrOrderToppingIsNotConstructed
	}
	return nil
}

func (ot *OrderTopping) ID() kernel.ID {
	return ot.id
}

func (ot *OrderTopping) OrderID() kernel.ID {
	return ot.orderID
}

func (ot *OrderTopping) ToppingID() kernel.ID {
	return ot.toppingID
}

// BelongsTo reports whether the association is for the given order.
func (ot *OrderTopping) BelongsTo(orderID kernel.ID) bool {
	return ot.orderID == orderID
}

func (ot *OrderTopping) Clone() *OrderTopping {
	cp := *ot
	return &cp
}
