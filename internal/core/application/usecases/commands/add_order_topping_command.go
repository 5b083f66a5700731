package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/guard"
)

var ErrAddOrderToppingCommandIsNotConstructed = errors.New(
	"AddOrderToppingCommand must be created via NewAddOrderToppingCommand constructor",
)

// AddOrderToppingCommand attaches a topping to an order. Neither side is
// checked for existence, and attaching the same topping twice is allowed.
//
// Example:
//
//	cmd, _ := NewAddOrderToppingCommand(orderID, toppingID)
//	association, err := handler.Handle(ctx, cmd)
type AddOrderToppingCommand struct {
	orderID   kernel.ID
	toppingID kernel.ID

	guard guard.ConstructorGuard
}

func NewAddOrderToppingCommand(orderID kernel.ID, toppingID kernel.ID) (AddOrderToppingCommand, error) {
	return AddOrderToppingCommand{
		orderID:   orderID,
		toppingID: toppingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderToppingCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToppingCommandIsNotConstructed)
}

func (c AddOrderToppingCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AddOrderToppingCommand) ToppingID() kernel.ID {
	return c.toppingID
}
