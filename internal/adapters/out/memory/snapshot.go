package memory

import (
	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/driver"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/domain/model/topping"
	"tubertreats/internal/core/ports"
)

var _ ports.Snapshot = snapshot{}

type snapshot struct {
	state *state
}

func (s snapshot) Customers() []*customer.Customer {
	return s.state.customers.All()
}

func (s snapshot) Customer(id kernel.ID) (*customer.Customer, bool) {
	return s.state.customers.Get(id)
}

func (s snapshot) Drivers() []*driver.Driver {
	return s.state.drivers.All()
}

func (s snapshot) Driver(id kernel.ID) (*driver.Driver, bool) {
	return s.state.drivers.Get(id)
}

func (s snapshot) Toppings() []*topping.Topping {
	return s.state.toppings.All()
}

func (s snapshot) Topping(id kernel.ID) (*topping.Topping, bool) {
	return s.state.toppings.Get(id)
}

func (s snapshot) Orders() []*order.Order {
	return s.state.orders.All()
}

func (s snapshot) Order(id kernel.ID) (*order.Order, bool) {
	return s.state.orders.Get(id)
}

func (s snapshot) OrderToppings() []*ordertopping.OrderTopping {
	return s.state.orderToppings.All()
}
