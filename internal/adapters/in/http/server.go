package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"tubertreats/internal/core/application/usecases/commands"
	"tubertreats/internal/core/application/usecases/queries"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write use cases the server dispatches to.
type CommandHandlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	ReassignDriver     commands.ReassignDriverCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	AddOrderTopping    commands.AddOrderToppingCommandHandler
	RemoveOrderTopping commands.RemoveOrderToppingCommandHandler
	CreateCustomer     commands.CreateCustomerCommandHandler
	DeleteCustomer     commands.DeleteCustomerCommandHandler
}

// QueryHandlers groups the read use cases the server dispatches to.
type QueryHandlers struct {
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetAllToppings      queries.GetAllToppingsQueryHandler
	GetTopping          queries.GetToppingQueryHandler
	GetAllOrderToppings queries.GetAllOrderToppingsQueryHandler
	GetAllCustomers     queries.GetAllCustomersQueryHandler
	GetCustomer         queries.GetCustomerQueryHandler
	GetAllDrivers       queries.GetAllDriversQueryHandler
	GetDriver           queries.GetDriverQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *slog.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListTuberOrders handles GET /tuberorders - lists orders with toppings.
func (s *Server) ListTuberOrders(ctx echo.Context) error {
	orders, err := s.queries.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TuberOrder, len(orders))
	for i, o := range orders {
		response[i] = toTuberOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTuberOrder handles GET /tuberorders/{id}.
func (s *Server) GetTuberOrder(ctx echo.Context, id int) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTuberOrder(o))
}

// CreateTuberOrder handles POST /tuberorders - places an order.
func (s *Server) CreateTuberOrder(ctx echo.Context) error {
	var body servers.CreateTuberOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.ID(body.CustomerId), toIDPtr(body.TuberDriverId))
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/tuberorders/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, toTuberOrder(queries.NewOrderResponse(created)))
}

// UpdateTuberOrder handles PUT /tuberorders/{id} - reassigns the driver, or
// clears it when tuberDriverId is null or absent.
// Fields other than tuberDriverId are ignored.
func (s *Server) UpdateTuberOrder(ctx echo.Context, id int) error {
	var body servers.UpdateTuberOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewReassignDriverCommand(kernel.ID(id), toIDPtr(body.TuberDriverId))
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.commands.ReassignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTuberOrder(queries.NewOrderResponse(updated)))
}

// CompleteTuberOrder handles POST /tuberorders/{id}/complete.
func (s *Server) CompleteTuberOrder(ctx echo.Context, id int) error {
	cmd, err := commands.NewCompleteOrderCommand(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	completed, err := s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTuberOrder(queries.NewOrderResponse(completed)))
}

// ListToppings handles GET /toppings.
func (s *Server) ListToppings(ctx echo.Context) error {
	toppings, err := s.queries.GetAllToppings.Handle(ctx.Request().Context(), queries.NewGetAllToppingsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Topping, len(toppings))
	for i, t := range toppings {
		response[i] = toTopping(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTopping handles GET /toppings/{id}.
func (s *Server) GetTopping(ctx echo.Context, id int) error {
	query, err := queries.NewGetToppingQuery(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.queries.GetTopping.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTopping(t))
}

// ListTuberToppings handles GET /tubertoppings.
func (s *Server) ListTuberToppings(ctx echo.Context) error {
	associations, err := s.queries.GetAllOrderToppings.Handle(
		ctx.Request().Context(), queries.NewGetAllOrderToppingsQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TuberTopping, len(associations))
	for i, ot := range associations {
		response[i] = toTuberTopping(ot)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTuberTopping handles POST /tubertoppings - attaches a topping to an order.
func (s *Server) CreateTuberTopping(ctx echo.Context) error {
	var body servers.CreateTuberToppingJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewAddOrderToppingCommand(kernel.ID(body.TuberOrderId), kernel.ID(body.ToppingId))
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.AddOrderTopping.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/tubertoppings/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, toTuberTopping(queries.NewOrderToppingResponse(created)))
}

// DeleteTuberTopping handles DELETE /tubertoppings/{id}.
func (s *Server) DeleteTuberTopping(ctx echo.Context, id int) error {
	cmd := commands.NewRemoveOrderToppingCommand(kernel.ID(id))
	if err := s.commands.RemoveOrderTopping.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListCustomers handles GET /customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.queries.GetAllCustomers.Handle(ctx.Request().Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = toCustomer(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /customers/{id}.
func (s *Server) GetCustomer(ctx echo.Context, id int) error {
	query, err := queries.NewGetCustomerQuery(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomer(c))
}

// CreateCustomer handles POST /customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalidBody(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/customers/%d", created.ID()))
	return ctx.JSON(http.StatusCreated, toCustomer(queries.NewCustomerResponse(created)))
}

// DeleteCustomer handles DELETE /customers/{id}. Orders of the customer are kept.
func (s *Server) DeleteCustomer(ctx echo.Context, id int) error {
	cmd := commands.NewDeleteCustomerCommand(kernel.ID(id))
	if err := s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListTuberDrivers handles GET /tuberdrivers.
func (s *Server) ListTuberDrivers(ctx echo.Context) error {
	drivers, err := s.queries.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TuberDriver, len(drivers))
	for i, d := range drivers {
		response[i] = toTuberDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTuberDriver handles GET /tuberdrivers/{id}.
func (s *Server) GetTuberDriver(ctx echo.Context, id int) error {
	query, err := queries.NewGetDriverQuery(kernel.ID(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.queries.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTuberDriver(d))
}
