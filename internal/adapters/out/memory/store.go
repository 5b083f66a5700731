// Package memory provides the process-local entity store: one insertion-ordered
// table per collection, read through consistent snapshots and written through
// units of work.
//
// Writers are serialized. A unit of work copies the current state on Begin,
// its repositories change the copy, and Commit publishes the copy in one step.
// Readers hold the read lock for the duration of a View and therefore never see
// a half-applied command. Published state is never modified afterwards.
//
// Usage:
//
//	store := memory.NewStore()
//	if err := store.Seed(ctx, clock.Now()); err != nil {
//	    return err
//	}
//
//	uow := memory.NewUnitOfWorkFactory(store).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/driver"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/domain/model/topping"
	"tubertreats/internal/core/ports"

	"golang.org/x/sync/semaphore"
)

type state struct {
	customers     *table.Table[*customer.Customer]
	drivers       *table.Table[*driver.Driver]
	toppings      *table.Table[*topping.Topping]
	orders        *table.Table[*order.Order]
	orderToppings *table.Table[*ordertopping.OrderTopping]
}

func newState() *state {
	return &state{
		customers:     table.New[*customer.Customer](),
		drivers:       table.New[*driver.Driver](),
		toppings:      table.New[*topping.Topping](),
		orders:        table.New[*order.Order](),
		orderToppings: table.New[*ordertopping.OrderTopping](),
	}
}

func (s *state) clone() *state {
	return &state{
		customers:     s.customers.Clone(),
		drivers:       s.drivers.Clone(),
		toppings:      s.toppings.Clone(),
		orders:        s.orders.Clone(),
		orderToppings: s.orderToppings.Clone(),
	}
}

// Store owns every collection of the service.
type Store struct {
	mu     sync.RWMutex
	writer *semaphore.Weighted
	state  *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		writer: semaphore.NewWeighted(1),
		state:  newState(),
	}
}

// View runs fn against the current state. Commits wait until fn returns.
func (s *Store) View(ctx context.Context, fn func(ports.Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(snapshot{state: s.state})
}

// acquire waits for the writer slot and returns a private copy of the state.
func (s *Store) acquire(ctx context.Context) (*state, error) {
	if err := s.writer.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone(), nil
}

// publish makes tx the current state and frees the writer slot.
func (s *Store) publish(tx *state) {
	s.mu.Lock()
	s.state = tx
	s.mu.Unlock()

	s.writer.Release(1)
}

// discard frees the writer slot without changing the current state.
func (s *Store) discard() {
	s.writer.Release(1)
}
