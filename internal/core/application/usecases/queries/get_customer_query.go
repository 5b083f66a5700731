package queries

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
	"tubertreats/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery fetches a customer together with the orders it placed.
//
// Example:
//
//	query, err := NewGetCustomerQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	c, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown customer
//	}
//	for _, o := range c.Orders {
//	    fmt.Println(o.ID, len(o.Toppings))
//	}
type GetCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.ID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, errs.NewObjectNotFoundErrorWithCause("customer", customerID, err)
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}
