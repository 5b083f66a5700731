// Package servers holds the HTTP contract of the service: the wire types, the
// ServerInterface an adapter implements, the echo route wrappers and the
// embedded OpenAPI document they are derived from (openapi.yml).
package servers

import (
	"time"
)

// Customer defines model for Customer.
type Customer struct {
	Address     string        `json:"address"`
	Id          int           `json:"id"`
	Name        string        `json:"name"`
	TuberOrders *[]TuberOrder `json:"tuberOrders,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// NewTuberOrder defines model for NewTuberOrder.
type NewTuberOrder struct {
	CustomerId    int  `json:"customerId"`
	TuberDriverId *int `json:"tuberDriverId,omitempty"`
}

// NewTuberTopping defines model for NewTuberTopping.
type NewTuberTopping struct {
	ToppingId    int `json:"toppingId"`
	TuberOrderId int `json:"tuberOrderId"`
}

// Topping defines model for Topping.
type Topping struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// TuberDriver defines model for TuberDriver.
type TuberDriver struct {
	Id              int           `json:"id"`
	Name            string        `json:"name"`
	TuberDeliveries *[]TuberOrder `json:"tuberDeliveries,omitempty"`
}

// TuberOrder defines model for TuberOrder.
type TuberOrder struct {
	CustomerId        int        `json:"customerId"`
	DeliveredOnDate   *time.Time `json:"deliveredOnDate,omitempty"`
	Id                int        `json:"id"`
	OrderPlacedOnDate time.Time  `json:"orderPlacedOnDate"`
	Toppings          *[]Topping `json:"toppings,omitempty"`
	TuberDriverId     *int       `json:"tuberDriverId,omitempty"`
}

// TuberTopping defines model for TuberTopping.
type TuberTopping struct {
	Id           int `json:"id"`
	ToppingId    int `json:"toppingId"`
	TuberOrderId int `json:"tuberOrderId"`
}

// UpdateTuberOrder defines model for UpdateTuberOrder.
type UpdateTuberOrder struct {
	// TuberDriverId The new driver; null or absent leaves the order unassigned
	TuberDriverId *int `json:"tuberDriverId,omitempty"`
}

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// CreateTuberOrderJSONRequestBody defines body for CreateTuberOrder for application/json ContentType.
type CreateTuberOrderJSONRequestBody = NewTuberOrder

// UpdateTuberOrderJSONRequestBody defines body for UpdateTuberOrder for application/json ContentType.
type UpdateTuberOrderJSONRequestBody = UpdateTuberOrder

// CreateTuberToppingJSONRequestBody defines body for CreateTuberTopping for application/json ContentType.
type CreateTuberToppingJSONRequestBody = NewTuberTopping
