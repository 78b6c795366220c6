package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockOrderRepository implements domain.OrderRepository for testing
type MockOrderRepository struct {
	CreateFunc              func(ctx context.Context, order *domain.Order) error
	FindByIDFunc            func(ctx context.Context, id string) (*domain.Order, error)
	FindByUserIDFunc        func(ctx context.Context, userID string) ([]domain.Order, error)
	UpdatePaymentStatusFunc func(ctx context.Context, orderID string, status domain.PaymentStatus, ref string) error
}

// NewMockOrderRepository creates a new MockOrderRepository with default behaviors
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrOrderNotFound
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, ref string) error {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, orderID, status, ref)
	}
	return nil
}
