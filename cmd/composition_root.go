package cmd

import (
	"log/slog"

	httpin "tubertreats/internal/adapters/in/http"
	"tubertreats/internal/adapters/out/memory"
	"tubertreats/internal/core/application/usecases/commands"
	"tubertreats/internal/core/application/usecases/queries"
	"tubertreats/internal/core/domain/model/kernel"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, store *memory.Store, clock kernel.Clock, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		clock:      clock,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderToppingUoWFactory() commands.OrderToppingUoWFactory {
	return FuncOrderToppingUoWFactory(func() commands.OrderToppingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReassignDriverCommandHandler() commands.ReassignDriverCommandHandler {
	return commands.NewReassignDriverCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddOrderToppingCommandHandler() commands.AddOrderToppingCommandHandler {
	return commands.NewAddOrderToppingCommandHandler(c.orderToppingUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderToppingCommandHandler() commands.RemoveOrderToppingCommandHandler {
	return commands.NewRemoveOrderToppingCommandHandler(c.orderToppingUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllToppingsQueryHandler() queries.GetAllToppingsQueryHandler {
	return queries.NewGetAllToppingsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetToppingQueryHandler() queries.GetToppingQueryHandler {
	return queries.NewGetToppingQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllOrderToppingsQueryHandler() queries.GetAllOrderToppingsQueryHandler {
	return queries.NewGetAllOrderToppingsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.store)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:        c.CreateCreateOrderCommandHandler(),
			ReassignDriver:     c.CreateReassignDriverCommandHandler(),
			CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
			AddOrderTopping:    c.CreateAddOrderToppingCommandHandler(),
			RemoveOrderTopping: c.CreateRemoveOrderToppingCommandHandler(),
			CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
			DeleteCustomer:     c.CreateDeleteCustomerCommandHandler(),
		},
		httpin.QueryHandlers{
			GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
			GetOrder:            c.CreateGetOrderQueryHandler(),
			GetAllToppings:      c.CreateGetAllToppingsQueryHandler(),
			GetTopping:          c.CreateGetToppingQueryHandler(),
			GetAllOrderToppings: c.CreateGetAllOrderToppingsQueryHandler(),
			GetAllCustomers:     c.CreateGetAllCustomersQueryHandler(),
			GetCustomer:         c.CreateGetCustomerQueryHandler(),
			GetAllDrivers:       c.CreateGetAllDriversQueryHandler(),
			GetDriver:           c.CreateGetDriverQueryHandler(),
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderToppingUoWFactory func() commands.OrderToppingUoW

func (f FuncOrderToppingUoWFactory) Create() commands.OrderToppingUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
