package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/you/shopsvc/domain"
)

// resetTokenBytes is the entropy of a password-reset token; hex-encoded it
// yields 64 characters.
const resetTokenBytes = 32

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	sessionRepo     domain.SessionRepository
	passwordSvc     domain.PasswordService
	notificationSvc domain.NotificationService
	sessionTTL      time.Duration
	resetTokenTTL   time.Duration
	baseURL         string
	logger          *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	notificationSvc domain.NotificationService,
	sessionTTL time.Duration,
	resetTokenTTL time.Duration,
	baseURL string,
	logger *slog.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		passwordSvc:     passwordSvc,
		notificationSvc: notificationSvc,
		sessionTTL:      sessionTTL,
		resetTokenTTL:   resetTokenTTL,
		baseURL:         baseURL,
		logger:          logger,
	}
}

// Signup implements domain.AuthService
func (s *AuthServiceImpl) Signup(ctx context.Context, email, password, confirmPassword string) (*domain.User, error) {
	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	// Uniqueness is checked here as well as by the store's unique index.
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
		Cart:         domain.Cart{Items: []domain.CartItem{}},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Welcome mail is best effort; the signup already succeeded.
	go func() {
		if err := s.notificationSvc.SendEmail(email, "Successfully registered", "<h1>Successfully registered</h1>"); err != nil {
			s.logger.Error("welcome mail failed", "email", email, "error", err)
		}
	}()

	return user, nil
}

// Login implements domain.AuthService. A missing account and a wrong
// password produce the same error so nothing leaks about which was wrong.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID.Hex(),
		IsLoggedIn: true,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(s.sessionTTL),
	}

	// The session must be durable before success is reported.
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// RequestPasswordReset implements domain.AuthService. An unknown email
// returns success so account existence is never disclosed.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.logger.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	expiresAt := time.Now().Add(s.resetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID.Hex(), token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/reset/%s", s.baseURL, token)
	body := fmt.Sprintf(`
		<p>You've requested a password reset.</p>
		<p>Click the link below to set a new password.</p>
		<a href="%s">Reset Password</a>
	`, link)

	go func() {
		if err := s.notificationSvc.SendEmail(email, "Reset password", body); err != nil {
			s.logger.Error("reset mail failed", "email", email, "error", err)
		}
	}()

	return nil
}

// ValidateResetToken implements domain.AuthService
func (s *AuthServiceImpl) ValidateResetToken(ctx context.Context, token string) (*domain.User, error) {
	return s.userRepo.FindByResetToken(ctx, token, time.Now())
}

// ConsumeResetToken implements domain.AuthService. The lookup requires the
// user id, the exact token and an unexpired timestamp to match; anything
// else fails explicitly.
func (s *AuthServiceImpl) ConsumeResetToken(ctx context.Context, userID, token, newPassword string) error {
	user, err := s.userRepo.FindByIDAndResetToken(ctx, userID, token, time.Now())
	if err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// ResetPassword also clears both token fields, making the token single use.
	if err := s.userRepo.ResetPassword(ctx, user.ID.Hex(), hashedPassword); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

// generateResetToken returns a cryptographically random hex token.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
