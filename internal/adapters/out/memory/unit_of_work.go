package memory

import (
	"context"

	"tubertreats/internal/adapters/out/memory/customerrepo"
	"tubertreats/internal/adapters/out/memory/orderrepo"
	"tubertreats/internal/adapters/out/memory/ordertoppingrepo"
	"tubertreats/internal/adapters/out/memory/table"
	"tubertreats/internal/core/ports"
)

// UnitOfWorkFactory creates UnitOfWork instances over one store.
// Each business operation gets a fresh unit of work.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds a private copy of the store's state between Begin and
// Commit or Rollback. Repositories obtained from it operate on that copy.
//
// Example usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("failed to begin transaction: %w", err)
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	...
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin waits for exclusive write access and starts a transaction.
// Calling Begin again on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx, err := uow.store.acquire(ctx)
	if err != nil {
		return err
	}
	uow.tx = tx
	return nil
}

// Commit publishes all changes made within the current transaction.
// Returns table.ErrInvalidTransaction if no transaction is active.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return table.ErrInvalidTransaction
	}

	uow.store.publish(uow.tx)
	uow.tx = nil
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns table.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after Commit harmless.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return table.ErrInvalidTransaction
	}

	uow.tx = nil
	uow.store.discard()
	return nil
}

// CustomerRepository returns a repository over the transaction's customers.
// Outside a transaction every call on it fails with table.ErrInvalidTransaction.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	if uow.tx == nil {
		return customerrepo.NewMemoryCustomerRepository(nil)
	}
	return customerrepo.NewMemoryCustomerRepository(uow.tx.customers)
}

// OrderRepository returns a repository over the transaction's orders.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.tx == nil {
		return orderrepo.NewMemoryOrderRepository(nil)
	}
	return orderrepo.NewMemoryOrderRepository(uow.tx.orders)
}

// OrderToppingRepository returns a repository over the transaction's associations.
func (uow *UnitOfWork) OrderToppingRepository() ports.OrderToppingRepository {
	if uow.tx == nil {
		return ordertoppingrepo.NewMemoryOrderToppingRepository(nil)
	}
	return ordertoppingrepo.NewMemoryOrderToppingRepository(uow.tx.orderToppings)
}
