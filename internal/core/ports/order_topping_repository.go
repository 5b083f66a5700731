package ports

import (
	"context"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/ordertopping"
)

// OrderToppingRepository defines the persistence contract for order/topping
// associations. Associations are added and removed, never updated.
type OrderToppingRepository interface {
	// NextID returns the identifier the next added association must use.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add appends an association. Duplicate order/topping pairs are allowed.
	Add(ctx context.Context, association *ordertopping.OrderTopping) error

	// Remove deletes an association. Removing an unknown identifier is not an error.
	Remove(ctx context.Context, id kernel.ID) error
}
