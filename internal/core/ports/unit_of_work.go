package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the entity store.
// Changes made through its repositories become visible to readers only on Commit.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction. Only one transaction runs at a time;
	// Begin blocks until the store is free or ctx is done.
	Begin(ctx context.Context) error

	// Commit publishes the changes made since Begin.
	// Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the changes made since Begin.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// OrderToppingRepository returns an OrderToppingRepository bound to the current transaction.
	OrderToppingRepository() OrderToppingRepository
}
