package queries

import (
	"time"

	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/driver"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/domain/model/topping"
	"tubertreats/internal/core/ports"
)

// ToppingResponse is a topping in the read model.
type ToppingResponse struct {
	ID   kernel.ID
	Name string
}

// OrderToppingResponse is an order/topping association in the read model.
type OrderToppingResponse struct {
	ID        kernel.ID
	OrderID   kernel.ID
	ToppingID kernel.ID
}

// OrderResponse is an order in the read model.
//
// Toppings is nil when the toppings were not computed for this response and
// non-nil (possibly empty) when they were. Adapters use the difference to omit
// the field or render an empty list.
type OrderResponse struct {
	ID          kernel.ID
	PlacedOn    time.Time
	CustomerID  kernel.ID
	DriverID    *kernel.ID
	DeliveredOn *time.Time
	Toppings    []ToppingResponse
}

// CustomerResponse is a customer in the read model. Orders follows the same
// nil-versus-empty convention as OrderResponse.Toppings.
type CustomerResponse struct {
	ID      kernel.ID
	Name    string
	Address string
	Orders  []OrderResponse
}

// DriverResponse is a driver in the read model. Deliveries follows the same
// nil-versus-empty convention as OrderResponse.Toppings.
type DriverResponse struct {
	ID         kernel.ID
	Name       string
	Deliveries []OrderResponse
}

// NewOrderResponse builds a shallow order response: no toppings are computed.
// Commands use it to describe the order they changed.
func NewOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID(),
		PlacedOn:    o.PlacedOn(),
		CustomerID:  o.CustomerID(),
		DriverID:    o.DriverID(),
		DeliveredOn: o.DeliveredOn(),
	}
}

func NewToppingResponse(t *topping.Topping) ToppingResponse {
	return ToppingResponse{ID: t.ID(), Name: t.Name()}
}

func NewOrderToppingResponse(ot *ordertopping.OrderTopping) OrderToppingResponse {
	return OrderToppingResponse{
		ID:        ot.ID(),
		OrderID:   ot.OrderID(),
		ToppingID: ot.ToppingID(),
	}
}

// NewCustomerResponse builds a shallow customer response without orders.
func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID(),
		Name:    c.Name(),
		Address: c.Address(),
	}
}

// NewDriverResponse builds a shallow driver response without deliveries.
func NewDriverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{ID: d.ID(), Name: d.Name()}
}

// projector joins records of one snapshot into nested responses.
// It reads the association rows once and reuses them for every order.
type projector struct {
	snapshot      ports.Snapshot
	orderToppings []*ordertopping.OrderTopping
}

func newProjector(s ports.Snapshot) *projector {
	return &projector{snapshot: s}
}

// order returns the order with its toppings. Toppings appear in association
// order; an association pointing at a missing topping contributes nothing and
// a topping attached twice appears twice.
func (p *projector) order(o *order.Order) OrderResponse {
	if p.orderToppings == nil {
		p.orderToppings = p.snapshot.OrderToppings()
	}

	resp := NewOrderResponse(o)
	resp.Toppings = make([]ToppingResponse, 0)
	for _, ot := range p.orderToppings {
		if !ot.BelongsTo(o.ID()) {
			continue
		}
		t, ok := p.snapshot.Topping(ot.ToppingID())
		if !ok {
			continue
		}
		resp.Toppings = append(resp.Toppings, NewToppingResponse(t))
	}
	return resp
}

// customer returns the customer with every order it placed, in order-collection order.
func (p *projector) customer(c *customer.Customer) CustomerResponse {
	resp := NewCustomerResponse(c)
	resp.Orders = make([]OrderResponse, 0)
	for _, o := range p.snapshot.Orders() {
		if o.CustomerID() == c.ID() {
			resp.Orders = append(resp.Orders, p.order(o))
		}
	}
	return resp
}

// driver returns the driver with every order assigned to it, in order-collection order.
func (p *projector) driver(d *driver.Driver) DriverResponse {
	resp := NewDriverResponse(d)
	resp.Deliveries = make([]OrderResponse, 0)
	for _, o := range p.snapshot.Orders() {
		if o.IsDeliveredBy(d.ID()) {
			resp.Deliveries = append(resp.Deliveries, p.order(o))
		}
	}
	return resp
}
