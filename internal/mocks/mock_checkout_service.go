package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockCheckoutService implements domain.CheckoutService for testing
type MockCheckoutService struct {
	PlaceOrderFunc func(ctx context.Context, user *domain.User, paymentToken string) (*domain.Order, error)
}

// NewMockCheckoutService creates a new MockCheckoutService with default behaviors
func NewMockCheckoutService() *MockCheckoutService {
	return &MockCheckoutService{}
}

func (m *MockCheckoutService) PlaceOrder(ctx context.Context, user *domain.User, paymentToken string) (*domain.Order, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, user, paymentToken)
	}
	return &domain.Order{PaymentStatus: domain.PaymentPaid}, nil
}
