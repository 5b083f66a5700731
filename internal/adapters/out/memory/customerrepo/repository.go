package customerrepo

import (
	"context"

	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
)

// MemoryCustomerRepository implements CustomerRepository over a transaction's
// customer table.
type MemoryCustomerRepository struct {
	rows *table.Table[*customer.Customer]
}

// NewMemoryCustomerRepository creates a repository bound to rows. A nil table
// means no transaction is active and every call fails.
func NewMemoryCustomerRepository(rows *table.Table[*customer.Customer]) *MemoryCustomerRepository {
	return &MemoryCustomerRepository{rows: rows}
}

// NextID returns the identifier for the next customer.
func (r *MemoryCustomerRepository) NextID(_ context.Context) (kernel.ID, error) {
	if r.rows == nil {
		return 0, table.ErrInvalidTransaction
	}
	return r.rows.NextID(), nil
}

// Add stores a new customer.
func (r *MemoryCustomerRepository) Add(_ context.Context, c *customer.Customer) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return r.rows.Insert(c)
}

// Get retrieves a customer by ID.
func (r *MemoryCustomerRepository) Get(_ context.Context, id kernel.ID) (*customer.Customer, error) {
	if r.rows == nil {
		return nil, table.ErrInvalidTransaction
	}

	c, ok := r.rows.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return c, nil
}

// Remove deletes a customer if it exists.
func (r *MemoryCustomerRepository) Remove(_ context.Context, id kernel.ID) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	r.rows.Remove(id)
	return nil
}
