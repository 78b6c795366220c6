package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockOrderService implements domain.OrderService for testing
type MockOrderService struct {
	ListOrdersFunc func(ctx context.Context, user *domain.User) ([]domain.Order, error)
}

// NewMockOrderService creates a new MockOrderService with default behaviors
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

func (m *MockOrderService) ListOrders(ctx context.Context, user *domain.User) ([]domain.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, user)
	}
	return []domain.Order{}, nil
}
