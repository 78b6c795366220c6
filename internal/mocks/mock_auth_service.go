package mocks

import (
	"context"

	"github.com/you/shopsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	SignupFunc               func(ctx context.Context, email, password, confirmPassword string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.Session, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ValidateResetTokenFunc   func(ctx context.Context, token string) (*domain.User, error)
	ConsumeResetTokenFunc    func(ctx context.Context, userID, token, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Signup(ctx context.Context, email, password, confirmPassword string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password, confirmPassword)
	}
	return &domain.User{Email: email, Role: domain.RoleUser}, nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.Session{ID: "session-1", IsLoggedIn: true}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ValidateResetToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateResetTokenFunc != nil {
		return m.ValidateResetTokenFunc(ctx, token)
	}
	return &domain.User{}, nil
}

func (m *MockAuthService) ConsumeResetToken(ctx context.Context, userID, token, newPassword string) error {
	if m.ConsumeResetTokenFunc != nil {
		return m.ConsumeResetTokenFunc(ctx, userID, token, newPassword)
	}
	return nil
}
