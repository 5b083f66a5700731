package http

import (
	"tubertreats/internal/core/application/usecases/queries"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/generated/servers"
)

// Nil nested collections in the read model are left out of the JSON; computed
// ones, empty or not, are rendered as arrays.

func toTopping(t queries.ToppingResponse) servers.Topping {
	return servers.Topping{
		Id:   t.ID.Int(),
		Name: t.Name,
	}
}

func toTuberTopping(ot queries.OrderToppingResponse) servers.TuberTopping {
	return servers.TuberTopping{
		Id:           ot.ID.Int(),
		TuberOrderId: ot.OrderID.Int(),
		ToppingId:    ot.ToppingID.Int(),
	}
}

func toTuberOrder(o queries.OrderResponse) servers.TuberOrder {
	response := servers.TuberOrder{
		Id:                o.ID.Int(),
		OrderPlacedOnDate: o.PlacedOn,
		CustomerId:        o.CustomerID.Int(),
		DeliveredOnDate:   o.DeliveredOn,
	}
	if o.DriverID != nil {
		driverID := o.DriverID.Int()
		response.TuberDriverId = &driverID
	}
	if o.Toppings != nil {
		toppings := make([]servers.Topping, len(o.Toppings))
		for i, t := range o.Toppings {
			toppings[i] = toTopping(t)
		}
		response.Toppings = &toppings
	}
	return response
}

func toTuberOrders(orders []queries.OrderResponse) *[]servers.TuberOrder {
	if orders == nil {
		return nil
	}
	response := make([]servers.TuberOrder, len(orders))
	for i, o := range orders {
		response[i] = toTuberOrder(o)
	}
	return &response
}

func toCustomer(c queries.CustomerResponse) servers.Customer {
	return servers.Customer{
		Id:          c.ID.Int(),
		Name:        c.Name,
		Address:     c.Address,
		TuberOrders: toTuberOrders(c.Orders),
	}
}

func toTuberDriver(d queries.DriverResponse) servers.TuberDriver {
	return servers.TuberDriver{
		Id:              d.ID.Int(),
		Name:            d.Name,
		TuberDeliveries: toTuberOrders(d.Deliveries),
	}
}

func toIDPtr(id *int) *kernel.ID {
	if id == nil {
		return nil
	}
	v := kernel.ID(*id)
	return &v
}
