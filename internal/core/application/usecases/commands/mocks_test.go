package commands_test

import (
	"context"

	"tubertreats/internal/core/application/usecases/commands"
	"tubertreats/internal/core/domain/model/customer"
	"tubertreats/internal/core/domain/model/kernel"
	"tubertreats/internal/core/domain/model/order"
	"tubertreats/internal/core/domain/model/ordertopping"
	"tubertreats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderToppingRepository struct{ mock.Mock }

func (m *MockOrderToppingRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockOrderToppingRepository) Add(ctx context.Context, ot *ordertopping.OrderTopping) error {
	args := m.Called(ctx, ot)
	return args.Error(0)
}
func (m *MockOrderToppingRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}
func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) Remove(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTx records the transaction lifecycle shared by every unit of work.
type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct {
	*MockTx
	repo ports.OrderRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository { return m.repo }

type MockOrderUoWFactory struct{ uow commands.OrderUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockOrderToppingUoW struct {
	*MockTx
	repo ports.OrderToppingRepository
}

func (m *MockOrderToppingUoW) OrderToppingRepository() ports.OrderToppingRepository { return m.repo }

type MockOrderToppingUoWFactory struct{ uow commands.OrderToppingUoW }

func (f MockOrderToppingUoWFactory) Create() commands.OrderToppingUoW { return f.uow }

type MockCustomerUoW struct {
	*MockTx
	repo ports.CustomerRepository
}

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository { return m.repo }

type MockCustomerUoWFactory struct{ uow commands.CustomerUoW }

func (f MockCustomerUoWFactory) Create() commands.CustomerUoW { return f.uow }

// expectBeginRollback sets up Begin and the deferred Rollback every handler performs.
func expectBeginRollback(tx *MockTx) {
	tx.On("Begin", mock.Anything).Return(nil).Once()
	tx.On("Rollback", mock.Anything).Return(nil).Once()
}
