package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
	"tubertreats/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand marks an order as delivered now.
type CompleteOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.ID) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, errs.NewObjectNotFoundErrorWithCause("order", orderID, err)
	}

	return CompleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
