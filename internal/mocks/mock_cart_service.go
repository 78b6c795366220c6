package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockCartService implements domain.CartService for testing
type MockCartService struct {
	AddToCartFunc      func(ctx context.Context, user *domain.User, productID string) (*domain.User, error)
	RemoveFromCartFunc func(ctx context.Context, user *domain.User, productID string) (*domain.User, error)
	ClearCartFunc      func(ctx context.Context, user *domain.User) error
	ResolveCartFunc    func(ctx context.Context, user *domain.User) (domain.ResolvedCart, error)

	// ClearCalls counts ClearCart invocations
	ClearCalls int
}

// NewMockCartService creates a new MockCartService with default behaviors
func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

func (m *MockCartService) AddToCart(ctx context.Context, user *domain.User, productID string) (*domain.User, error) {
	if m.AddToCartFunc != nil {
		return m.AddToCartFunc(ctx, user, productID)
	}
	return user, nil
}

func (m *MockCartService) RemoveFromCart(ctx context.Context, user *domain.User, productID string) (*domain.User, error) {
	if m.RemoveFromCartFunc != nil {
		return m.RemoveFromCartFunc(ctx, user, productID)
	}
	return user, nil
}

func (m *MockCartService) ClearCart(ctx context.Context, user *domain.User) error {
	m.ClearCalls++
	if m.ClearCartFunc != nil {
		return m.ClearCartFunc(ctx, user)
	}
	return nil
}

func (m *MockCartService) ResolveCart(ctx context.Context, user *domain.User) (domain.ResolvedCart, error) {
	if m.ResolveCartFunc != nil {
		return m.ResolveCartFunc(ctx, user)
	}
	return domain.ResolvedCart{}, nil
}
