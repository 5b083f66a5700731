package ports

import (
	"context"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	// NextID returns the identifier the next added order must use.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add stores a new order at the end of the collection.
	// The order must be valid and its identifier unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces a stored order in place, keeping its position in the collection.
	// Returns errs.ErrObjectNotFound if the order is not stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound if no order has that identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
