package queries_test

import (
	"context"

	"northwind/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, orderID int) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderDetailedInformation(
	ctx context.Context, orderID int,
) ([]order.OrderDetailedInfo, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderDetailedInfo), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, o *order.Order) (int, error) {
	args := m.Called(ctx, o)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) EditOrder(ctx context.Context, orderID int, edited *order.Order) error {
	args := m.Called(ctx, orderID, edited)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) GetNextOrderID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetCustomerOrderHistory(
	ctx context.Context, customerID string,
) ([]order.OrderHistoryElement, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderHistoryElement), args.Error(1)
}

func (m *MockOrderRepository) GetCustomerOrderDetail(
	ctx context.Context, orderID int,
) ([]order.OrderDetailElement, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderDetailElement), args.Error(1)
}
