package ordertoppingrepo

import (
	"context"

	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/ordertopping"
)

// MemoryOrderToppingRepository implements OrderToppingRepository over a
// transaction's association table.
type MemoryOrderToppingRepository struct {
	rows *table.Table[*ordertopping.OrderTopping]
}

func NewMemoryOrderToppingRepository(rows *table.Table[*ordertopping.OrderTopping]) *MemoryOrderToppingRepository {
	return &MemoryOrderToppingRepository{rows: rows}
}

func (r *MemoryOrderToppingRepository) NextID(_ context.Context) (kernel.ID, error) {
	if r.rows == nil {
		return 0, table.ErrInvalidTransaction
	}
	return r.rows.NextID(), nil
}

// Add appends an association. Neither the order nor the topping is checked.
func (r *MemoryOrderToppingRepository) Add(_ context.Context, association *ordertopping.OrderTopping) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	if err := association.Validate(); err != nil {
		return err
	}
	return r.rows.Insert(association)
}

func (r *MemoryOrderToppingRepository) Remove(_ context.Context, id kernel.ID) error {
	if r.rows == nil {
		return table.ErrInvalidTransaction
	}
	r.rows.Remove(id)
	return nil
}
