// Package ports defines the contracts between the application layer and the
// entity store, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// NextID returns the identifier the next added customer must use:
	// one more than the largest identifier in the collection.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add stores a new customer at the end of the collection.
	Add(ctx context.Context, customer *customer.Customer) error

	// Get retrieves a customer by its identifier.
	// Returns errs.ErrObjectNotFound if no customer has that identifier.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// Remove deletes a customer. Removing an unknown identifier is not an error,
	// and orders referencing the customer are left untouched.
	Remove(ctx context.Context, id kernel.ID) error
}
