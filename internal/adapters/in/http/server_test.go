package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tubertreats/cmd"
	"tubertreats/internal/adapters/out/memory"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/generated/servers"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ServerTestSuite drives the full HTTP stack against a freshly seeded store.
type ServerTestSuite struct {
	suite.Suite
	now time.Time
	e   *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	suite.now = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)
	store := memory.NewStore()
	suite.Require().NoError(store.Seed(context.Background(), suite.now))

	clock := kernel.Clock(func() time.Time { return suite.now })
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	config := cmd.Config{AppEnv: cmd.EnvProduction}

	e, err := cmd.NewWebServer(cmd.NewCompositionRoot(config, store, clock, logger), config)
	suite.Require().NoError(err)
	suite.e = e
}

func (suite *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) decode(rec *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// fields returns the top-level keys of a JSON object.
func (suite *ServerTestSuite) fields(raw []byte) map[string]json.RawMessage {
	var m map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(raw, &m))
	return m
}

func (suite *ServerTestSuite) assertError(rec *httptest.ResponseRecorder, status int) {
	suite.Equal(status, rec.Code, rec.Body.String())
	var body servers.Error
	suite.decode(rec, &body)
	suite.Equal(int32(status), body.Code)
	suite.NotEmpty(body.Message)
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestListTuberOrders_OmitsDeliveryDate() {
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/tuberorders/1/complete", "").Code)

	rec := suite.do(http.MethodGet, "/tuberorders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var raw []json.RawMessage
	suite.decode(rec, &raw)
	suite.Require().Len(raw, 3)
	for _, item := range raw {
		f := suite.fields(item)
		suite.NotContains(f, "deliveredOnDate")
		suite.Contains(f, "toppings")
	}
	suite.JSONEq(`[]`, string(suite.fields(raw[0])["toppings"]))
	suite.JSONEq(`[{"id":1,"name":"Cheese"}]`, string(suite.fields(raw[1])["toppings"]))
}

func (suite *ServerTestSuite) TestGetTuberOrder() {
	rec := suite.do(http.MethodGet, "/tuberorders/3", "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var o servers.TuberOrder
	suite.decode(rec, &o)
	suite.Equal(3, o.Id)
	suite.Equal(2, o.CustomerId)
	suite.Require().NotNil(o.TuberDriverId)
	suite.Equal(3, *o.TuberDriverId)
	suite.Equal(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), o.OrderPlacedOnDate.UTC())
	suite.Nil(o.DeliveredOnDate)
	suite.Require().NotNil(o.Toppings)
	suite.Equal([]servers.Topping{{Id: 3, Name: "Chives"}, {Id: 2, Name: "Butter"}, {Id: 5, Name: "Bacon"}}, *o.Toppings)
}

func (suite *ServerTestSuite) TestGetTuberOrder_Errors() {
	suite.assertError(suite.do(http.MethodGet, "/tuberorders/999", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodGet, "/tuberorders/abc", ""), http.StatusBadRequest)
	suite.assertError(suite.do(http.MethodGet, "/tuberorders/0", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodGet, "/tuberorders/-2", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestCreateTuberOrder() {
	rec := suite.do(http.MethodPost, "/tuberorders", `{"customerId":4,"tuberDriverId":2}`)

	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal("/tuberorders/4", rec.Header().Get(echo.HeaderLocation))
	f := suite.fields(rec.Body.Bytes())
	suite.NotContains(f, "toppings")
	suite.NotContains(f, "deliveredOnDate")

	var o servers.TuberOrder
	suite.decode(rec, &o)
	suite.Equal(4, o.Id)
	suite.Equal(4, o.CustomerId)
	suite.Equal(suite.now, o.OrderPlacedOnDate.UTC())
}

func (suite *ServerTestSuite) TestCreateTuberOrder_MalformedBody() {
	suite.assertError(suite.do(http.MethodPost, "/tuberorders", `{"customerId":`), http.StatusBadRequest)
	suite.assertError(suite.do(http.MethodPost, "/tuberorders", `{"customerId":"four"}`), http.StatusBadRequest)
}

func (suite *ServerTestSuite) TestUpdateTuberOrder() {
	rec := suite.do(http.MethodPut, "/tuberorders/1", `{"tuberDriverId":3,"customerId":99}`)

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.NotContains(suite.fields(rec.Body.Bytes()), "toppings")
	var o servers.TuberOrder
	suite.decode(rec, &o)
	suite.Require().NotNil(o.TuberDriverId)
	suite.Equal(3, *o.TuberDriverId)
	suite.Equal(5, o.CustomerId)
}

func (suite *ServerTestSuite) TestUpdateTuberOrder_NullDriverUnassigns() {
	for _, body := range []string{`{"tuberDriverId":null}`, `{}`} {
		rec := suite.do(http.MethodPut, "/tuberorders/1", body)

		suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		suite.NotContains(suite.fields(rec.Body.Bytes()), "tuberDriverId")
	}

	var o servers.TuberOrder
	suite.decode(suite.do(http.MethodGet, "/tuberorders/1", ""), &o)
	suite.Nil(o.TuberDriverId)
	suite.Equal(5, o.CustomerId)

	var d servers.TuberDriver
	suite.decode(suite.do(http.MethodGet, "/tuberdrivers/1", ""), &d)
	suite.Empty(*d.TuberDeliveries)
}

func (suite *ServerTestSuite) TestUpdateTuberOrder_MissingOrder() {
	suite.assertError(suite.do(http.MethodPut, "/tuberorders/999", `{"tuberDriverId":3}`), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodPut, "/tuberorders/999", `{}`), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodPut, "/tuberorders/0", `{"tuberDriverId":3}`), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestCompleteTuberOrder() {
	rec := suite.do(http.MethodPost, "/tuberorders/2/complete", "")

	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var o servers.TuberOrder
	suite.decode(rec, &o)
	suite.Require().NotNil(o.DeliveredOnDate)
	suite.Equal(suite.now, o.DeliveredOnDate.UTC())
	suite.Nil(o.Toppings)

	suite.assertError(suite.do(http.MethodPost, "/tuberorders/999/complete", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodPost, "/tuberorders/0/complete", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestAttachCompleteScenario() {
	rec := suite.do(http.MethodPost, "/tubertoppings", `{"tuberOrderId":1,"toppingId":1}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal("/tubertoppings/5", rec.Header().Get(echo.HeaderLocation))
	suite.JSONEq(`{"id":5,"tuberOrderId":1,"toppingId":1}`, rec.Body.String())

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/tuberorders/1/complete", "").Code)

	var o servers.TuberOrder
	suite.decode(suite.do(http.MethodGet, "/tuberorders/1", ""), &o)
	suite.NotNil(o.DeliveredOnDate)
	suite.Require().NotNil(o.Toppings)
	suite.Equal([]servers.Topping{{Id: 1, Name: "Cheese"}}, *o.Toppings)

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/tubertoppings/5", "").Code)
	suite.decode(suite.do(http.MethodGet, "/tuberorders/1", ""), &o)
	suite.Empty(*o.Toppings)
}

func (suite *ServerTestSuite) TestToppings() {
	var toppings []servers.Topping
	suite.decode(suite.do(http.MethodGet, "/toppings", ""), &toppings)
	suite.Len(toppings, 5)

	rec := suite.do(http.MethodGet, "/toppings/4", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"id":4,"name":"Sour Cream"}`, rec.Body.String())

	suite.assertError(suite.do(http.MethodGet, "/toppings/6", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodGet, "/toppings/0", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestTuberToppings() {
	rec := suite.do(http.MethodGet, "/tubertoppings", "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[
		{"id":1,"tuberOrderId":2,"toppingId":1},
		{"id":2,"tuberOrderId":3,"toppingId":3},
		{"id":3,"tuberOrderId":3,"toppingId":2},
		{"id":4,"tuberOrderId":3,"toppingId":5}
	]`, rec.Body.String())

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/tubertoppings/999", "").Code)
}

func (suite *ServerTestSuite) TestCustomers() {
	rec := suite.do(http.MethodGet, "/customers", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var raw []json.RawMessage
	suite.decode(rec, &raw)
	suite.Require().Len(raw, 5)
	suite.NotContains(suite.fields(raw[0]), "tuberOrders")

	rec = suite.do(http.MethodGet, "/customers/2", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var c servers.Customer
	suite.decode(rec, &c)
	suite.Equal("Jason", c.Name)
	suite.Require().NotNil(c.TuberOrders)
	suite.Require().Len(*c.TuberOrders, 1)
	suite.Len(*(*c.TuberOrders)[0].Toppings, 3)

	rec = suite.do(http.MethodGet, "/customers/1", "")
	suite.JSONEq(`[]`, string(suite.fields(rec.Body.Bytes())["tuberOrders"]))

	suite.assertError(suite.do(http.MethodGet, "/customers/999", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodGet, "/customers/0", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestCreateAndDeleteCustomer() {
	rec := suite.do(http.MethodPost, "/customers", `{"name":"Gumball","address":"1 Elmore Street"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.Equal("/customers/6", rec.Header().Get(echo.HeaderLocation))
	suite.JSONEq(`{"id":6,"name":"Gumball","address":"1 Elmore Street"}`, rec.Body.String())

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/customers/5", "").Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/customers/999", "").Code)
	suite.assertError(suite.do(http.MethodGet, "/customers/5", ""), http.StatusNotFound)

	var o servers.TuberOrder
	suite.decode(suite.do(http.MethodGet, "/tuberorders/1", ""), &o)
	suite.Equal(5, o.CustomerId)
}

func (suite *ServerTestSuite) TestTuberDrivers() {
	rec := suite.do(http.MethodGet, "/tuberdrivers", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[{"id":1,"name":"John"},{"id":2,"name":"Joseph"},{"id":3,"name":"Craig"}]`, rec.Body.String())

	var d servers.TuberDriver
	suite.decode(suite.do(http.MethodGet, "/tuberdrivers/1", ""), &d)
	suite.Equal("John", d.Name)
	suite.Require().NotNil(d.TuberDeliveries)
	suite.Require().Len(*d.TuberDeliveries, 1)
	suite.Equal(1, (*d.TuberDeliveries)[0].Id)

	suite.assertError(suite.do(http.MethodGet, "/tuberdrivers/4", ""), http.StatusNotFound)
	suite.assertError(suite.do(http.MethodGet, "/tuberdrivers/-1", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestDelete_NonPositiveIDsSucceed() {
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/customers/0", "").Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/customers/-1", "").Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/tubertoppings/0", "").Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/tubertoppings/-1", "").Code)

	var customers []servers.Customer
	suite.decode(suite.do(http.MethodGet, "/customers", ""), &customers)
	suite.Len(customers, 5)

	var associations []servers.TuberTopping
	suite.decode(suite.do(http.MethodGet, "/tubertoppings", ""), &associations)
	suite.Len(associations, 4)
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	suite.assertError(suite.do(http.MethodGet, "/menu", ""), http.StatusNotFound)
}

func (suite *ServerTestSuite) TestSwaggerIsNotServedInProduction() {
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/swagger/index.html", "").Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
