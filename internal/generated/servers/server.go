package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List customers without their orders
	// (GET /customers)
	ListCustomers(ctx echo.Context) error
	// Register a customer
	// (POST /customers)
	CreateCustomer(ctx echo.Context) error
	// Delete a customer; orders are kept and unknown ids are ignored
	// (DELETE /customers/{id})
	DeleteCustomer(ctx echo.Context, id int) error
	// Get a customer with orders and toppings
	// (GET /customers/{id})
	GetCustomer(ctx echo.Context, id int) error
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// List toppings
	// (GET /toppings)
	ListToppings(ctx echo.Context) error
	// Get a topping
	// (GET /toppings/{id})
	GetTopping(ctx echo.Context, id int) error
	// List drivers without their deliveries
	// (GET /tuberdrivers)
	ListTuberDrivers(ctx echo.Context) error
	// Get a driver with deliveries and toppings
	// (GET /tuberdrivers/{id})
	GetTuberDriver(ctx echo.Context, id int) error
	// List orders with their toppings (delivery time omitted)
	// (GET /tuberorders)
	ListTuberOrders(ctx echo.Context) error
	// Place an order
	// (POST /tuberorders)
	CreateTuberOrder(ctx echo.Context) error
	// Get an order with its toppings
	// (GET /tuberorders/{id})
	GetTuberOrder(ctx echo.Context, id int) error
	// Reassign or clear the driver of an order
	// (PUT /tuberorders/{id})
	UpdateTuberOrder(ctx echo.Context, id int) error
	// Mark an order as delivered now
	// (POST /tuberorders/{id}/complete)
	CompleteTuberOrder(ctx echo.Context, id int) error
	// List order/topping associations
	// (GET /tubertoppings)
	ListTuberToppings(ctx echo.Context) error
	// Attach a topping to an order
	// (POST /tubertoppings)
	CreateTuberTopping(ctx echo.Context) error
	// Detach a topping; unknown ids are ignored
	// (DELETE /tubertoppings/{id})
	DeleteTuberTopping(ctx echo.Context, id int) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// bindID binds the "id" path parameter shared by every item route.
func bindID(ctx echo.Context) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	return w.Handler.ListCustomers(ctx)
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

// DeleteCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCustomer(ctx, id)
}

// GetCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, id)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// ListToppings converts echo context to params.
func (w *ServerInterfaceWrapper) ListToppings(ctx echo.Context) error {
	return w.Handler.ListToppings(ctx)
}

// GetTopping converts echo context to params.
func (w *ServerInterfaceWrapper) GetTopping(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTopping(ctx, id)
}

// ListTuberDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListTuberDrivers(ctx echo.Context) error {
	return w.Handler.ListTuberDrivers(ctx)
}

// GetTuberDriver converts echo context to params.
func (w *ServerInterfaceWrapper) GetTuberDriver(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTuberDriver(ctx, id)
}

// ListTuberOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListTuberOrders(ctx echo.Context) error {
	return w.Handler.ListTuberOrders(ctx)
}

// CreateTuberOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTuberOrder(ctx echo.Context) error {
	return w.Handler.CreateTuberOrder(ctx)
}

// GetTuberOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetTuberOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTuberOrder(ctx, id)
}

// UpdateTuberOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTuberOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateTuberOrder(ctx, id)
}

// CompleteTuberOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteTuberOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteTuberOrder(ctx, id)
}

// ListTuberToppings converts echo context to params.
func (w *ServerInterfaceWrapper) ListTuberToppings(ctx echo.Context) error {
	return w.Handler.ListTuberToppings(ctx)
}

// CreateTuberTopping converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTuberTopping(ctx echo.Context) error {
	return w.Handler.CreateTuberTopping(ctx)
}

// DeleteTuberTopping converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteTuberTopping(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteTuberTopping(ctx, id)
}

// EchoRouter is the subset of echo.Echo and echo.Group the routes are registered on.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/customers", wrapper.CreateCustomer)
	router.DELETE(baseURL+"/customers/:id", wrapper.DeleteCustomer)
	router.GET(baseURL+"/customers/:id", wrapper.GetCustomer)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/toppings", wrapper.ListToppings)
	router.GET(baseURL+"/toppings/:id", wrapper.GetTopping)
	router.GET(baseURL+"/tuberdrivers", wrapper.ListTuberDrivers)
	router.GET(baseURL+"/tuberdrivers/:id", wrapper.GetTuberDriver)
	router.GET(baseURL+"/tuberorders", wrapper.ListTuberOrders)
	router.POST(baseURL+"/tuberorders", wrapper.CreateTuberOrder)
	router.GET(baseURL+"/tuberorders/:id", wrapper.GetTuberOrder)
	router.PUT(baseURL+"/tuberorders/:id", wrapper.UpdateTuberOrder)
	router.POST(baseURL+"/tuberorders/:id/complete", wrapper.CompleteTuberOrder)
	router.GET(baseURL+"/tubertoppings", wrapper.ListTuberToppings)
	router.POST(baseURL+"/tubertoppings", wrapper.CreateTuberTopping)
	router.DELETE(baseURL+"/tubertoppings/:id", wrapper.DeleteTuberTopping)
}
