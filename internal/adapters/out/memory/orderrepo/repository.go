package orderrepo

import (
	"context"

	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/pkg/errs"
)

// MemoryOrderRepository implements OrderRepository over a transaction's order table.
type MemoryOrderRepository struct {
	rows *table.Table[*order.Order]
}

// NewMemoryOrderRepository creates a new order repository bound to rows.
func NewMemoryOrderRepository(rows *table.Table[*order.Order]) *MemoryOrderRepository {
	return &MemoryOrderRepository{rows: rows}
}

// NextID returns the identifier for the next order.
func (r *MemoryOrderRepository) NextID(_ context.Context) (kernel.ID, error) {
	if r.rows == nil {
		return 0, table.ErrInvalidTransaction
	}
	return r.rows.NextID(), nil
}

// Add saves a new order.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.Insert(aggregate)
}

// Update saves an existing order.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if !r.rows.Replace(aggregate) {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if r.rows == nil {
		return nil, table.ErrInvalidTransaction
	}

	o, ok := r.rows.Get(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}
