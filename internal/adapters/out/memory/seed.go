package memory

import (
	"context"
	"errors"
	"time"

	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/driver"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/domain/model/topping"
)

var seedCustomers = []struct {
	name    string
	address string
}{
	{"Claude", "1223 Go Home Way"},
	{"Jason", "8675 I got it Street"},
	{"Chowder", "455 Crazy Road"},
	{"Eugune", "324 Bikini Bottom Road"},
	{"Uzu", "565 Burning Leaf Road"},
}

var seedDrivers = []string{"John", "Joseph", "Craig"}

var seedToppings = []string{"Cheese", "Butter", "Chives", "Sour Cream", "Bacon"}

var seedOrders = []struct {
	customerID int
	driverID   int
}{
	{5, 1},
	{3, 2},
	{2, 3},
}

var seedOrderToppings = []struct {
	orderID   int
	toppingID int
}{
	{2, 1},
	{3, 3},
	{3, 2},
	{3, 5},
}

// Seed replaces the store contents with the starting data set. Seeded orders
// are placed at midnight of the day containing now, in now's location.
func (s *Store) Seed(ctx context.Context, now time.Time) error {
	seeded, err := seedState(now)
	if err != nil {
		return err
	}

	if err := s.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	s.publish(seeded)
	return nil
}

func seedState(now time.Time) (*state, error) {
	st := newState()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var errList []error
	for i, c := range seedCustomers {
		row, err := customer.NewCustomer(kernel.MustNewID(i+1), c.name, c.address)
		errList = append(errList, err)
		if err == nil {
			errList = append(errList, st.customers.Insert(row))
		}
	}
	for i, name := range seedDrivers {
		row, err := driver.NewDriver(kernel.MustNewID(i+1), name)
		errList = append(errList, err)
		if err == nil {
			errList = append(errList, st.drivers.Insert(row))
		}
	}
	for i, name := range seedToppings {
		row, err := topping.NewTopping(kernel.MustNewID(i+1), name)
		errList = append(errList, err)
		if err == nil {
			errList = append(errList, st.toppings.Insert(row))
		}
	}
	for i, o := range seedOrders {
		driverID := kernel.MustNewID(o.driverID)
		row, err := order.NewOrder(kernel.MustNewID(i+1), kernel.MustNewID(o.customerID), &driverID, today)
		errList = append(errList, err)
		if err == nil {
			errList = append(errList, st.orders.Insert(row))
		}
	}
	for i, ot := range seedOrderToppings {
		row, err := ordertopping.NewOrderTopping(
			kernel.MustNewID(i+1), kernel.MustNewID(ot.orderID), kernel.MustNewID(ot.toppingID),
		)
		errList = append(errList, err)
		if err == nil {
			errList = append(errList, st.orderToppings.Insert(row))
		}
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return st, nil
}
