package mocks

import (
	"context"
	"time"

	"github.com/you/shopsvc/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *domain.User) error
	FindByEmailFunc           func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc              func(ctx context.Context, id string) (*domain.User, error)
	UpdateCartFunc            func(ctx context.Context, userID string, cart domain.Cart) error
	SetResetTokenFunc         func(ctx context.Context, userID, token string, expiresAt time.Time) error
	FindByResetTokenFunc      func(ctx context.Context, token string, now time.Time) (*domain.User, error)
	FindByIDAndResetTokenFunc func(ctx context.Context, userID, token string, now time.Time) (*domain.User, error)
	ResetPasswordFunc         func(ctx context.Context, userID, passwordHash string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) UpdateCart(ctx context.Context, userID string, cart domain.Cart) error {
	if m.UpdateCartFunc != nil {
		return m.UpdateCartFunc(ctx, userID, cart)
	}
	return nil
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, userID, token, expiresAt)
	}
	return nil
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token, now)
	}
	return nil, domain.ErrResetTokenInvalid
}

func (m *MockUserRepository) FindByIDAndResetToken(ctx context.Context, userID, token string, now time.Time) (*domain.User, error) {
	if m.FindByIDAndResetTokenFunc != nil {
		return m.FindByIDAndResetTokenFunc(ctx, userID, token, now)
	}
	return nil, domain.ErrResetTokenInvalid
}

func (m *MockUserRepository) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, userID, passwordHash)
	}
	return nil
}
