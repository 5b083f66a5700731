// Package table provides the insertion-ordered, integer-keyed collection the
// in-memory store keeps each entity kind in.
package table

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/pkg/errs"
)

// ErrInvalidTransaction is returned when a table is used outside an active
// unit of work.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Record is a stored entity. Clone must return an independent copy.
type Record[T any] interface {
	ID() kernel.ID
	Clone() T
}

// Table keeps rows by identifier and remembers the order they were inserted in.
// Rows are copied on the way in and on the way out, so a published table is
// never changed through a value a caller holds.
type Table[T Record[T]] struct {
	ids  []kernel.ID
	rows map[kernel.ID]T
}

func New[T Record[T]]() *Table[T] {
	return &Table[T]{
		rows: make(map[kernel.ID]T),
	}
}

// NextID returns one more than the largest identifier present, or 1 for an
// empty table. Gaps left by removed rows are never reused below the maximum.
func (t *Table[T]) NextID() kernel.ID {
	var maxID kernel.ID
	for _, id := range t.ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Insert appends a row. The identifier must be valid and unused.
func (t *Table[T]) Insert(row T) error {
	id := row.ID()
	if err := id.Validate(); err != nil {
		return err
	}
	if _, ok := t.rows[id]; ok {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is already used", int(id)))
	}

	t.ids = append(t.ids, id)
	t.rows[id] = row.Clone()
	return nil
}

// Get returns a copy of the row with the given identifier.
func (t *Table[T]) Get(id kernel.ID) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return row.Clone(), true
}

// Replace overwrites a stored row in place. It reports false when no row has
// the row's identifier.
func (t *Table[T]) Replace(row T) bool {
	id := row.ID()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row.Clone()
	return true
}

// Remove deletes the row with the given identifier. A missing row is ignored.
func (t *Table[T]) Remove(id kernel.ID) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	if i := slices.Index(t.ids, id); i >= 0 {
		t.ids = slices.Delete(t.ids, i, i+1)
	}
}

// All returns copies of every row in insertion order.
func (t *Table[T]) All() []T {
	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id].Clone())
	}
	return out
}

// Clone returns a table that can be changed without affecting t. Stored rows
// are shared because they are only ever replaced, never modified.
func (t *Table[T]) Clone() *Table[T] {
	return &Table[T]{
		ids:  slices.Clone(t.ids),
		rows: maps.Clone(t.rows),
	}
}
