package ports

import (
	"context"

	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/driver"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/domain/model/topping"
)

// Snapshot is a consistent, read-only view of every collection in the store.
// List methods return records in collection (insertion) order. Returned records
// are copies; changing them does not change the store.
type Snapshot interface {
	Customers() []*customer.Customer
	Customer(id kernel.ID) (*customer.Customer, bool)

	Drivers() []*driver.Driver
	Driver(id kernel.ID) (*driver.Driver, bool)

	Toppings() []*topping.Topping
	Topping(id kernel.ID) (*topping.Topping, bool)

	Orders() []*order.Order
	Order(id kernel.ID) (*order.Order, bool)

	OrderToppings() []*ordertopping.OrderTopping
}

// ReadStore gives queries access to snapshots of the store.
type ReadStore interface {
	// View runs fn against a snapshot. No command commits while fn runs.
	View(ctx context.Context, fn func(Snapshot) error) error
}
