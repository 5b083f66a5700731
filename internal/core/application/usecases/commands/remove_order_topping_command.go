package commands

import (
	"errors"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/guard"
)

var ErrRemoveOrderToppingCommandIsNotConstructed = errors.New(
	"RemoveOrderToppingCommand must be created via NewRemoveOrderToppingCommand constructor",
)

// RemoveOrderToppingCommand detaches a topping by association id.
type RemoveOrderToppingCommand struct {
	id kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveOrderToppingCommand accepts any id; removing an id that is not stored is a no-op.
func NewRemoveOrderToppingCommand(id kernel.ID) RemoveOrderToppingCommand {
	return RemoveOrderToppingCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderToppingCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderToppingCommandIsNotConstructed)
}

func (c RemoveOrderToppingCommand) ID() kernel.ID {
	return c.id
}
