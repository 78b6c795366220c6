package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/mocks"
)

func TestAuthServiceImpl_Signup(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		password        string
		confirmPassword string
		setupMocks      func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError   error
		validateUser    func(t *testing.T, user *domain.User)
	}{
		{
			name:            "successful signup",
			email:           "newuser@example.com",
			password:        "securepassword123",
			confirmPassword: "securepassword123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: nil,
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email %s, got %s", "newuser@example.com", user.Email)
				}
				if user.Role != domain.RoleUser {
					t.Errorf("expected role %s, got %s", domain.RoleUser, user.Role)
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("expected password hash %s, got %s", "hashed_securepassword123", user.PasswordHash)
				}
				if !user.Cart.IsEmpty() {
					t.Error("expected new user to start with an empty cart")
				}
			},
		},
		{
			name:            "password confirmation mismatch",
			email:           "newuser@example.com",
			password:        "password123",
			confirmPassword: "password124",
			setupMocks:      func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {},
			expectedError:   domain.ErrPasswordMismatch,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on password mismatch")
				}
			},
		},
		{
			name:            "user already exists",
			email:           "existing@example.com",
			password:        "password123",
			confirmPassword: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when already exists")
				}
			},
		},
		{
			name:            "password hashing fails",
			email:           "newuser@example.com",
			password:        "password123",
			confirmPassword: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: fmt.Errorf("failed to hash password: %w", errors.New("hashing failed")),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when password hashing fails")
				}
			},
		},
		{
			name:            "user creation fails",
			email:           "newuser@example.com",
			password:        "password123",
			confirmPassword: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: fmt.Errorf("failed to create user: %w", errors.New("database error")),
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil when creation fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			authService := createAuthServiceForTest(t, userRepo, nil, passwordSvc, nil)
			ctx := createTestContext(t)

			user, err := authService.Signup(ctx, tt.email, tt.password, tt.confirmPassword)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateUser(t, user)
		})
	}
}

func TestAuthServiceImpl_Signup_SendsWelcomeMail(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	notificationSvc := mocks.NewMockNotificationService()
	delivered := make(chan mocks.SentEmail, 1)
	notificationSvc.SendEmailFunc = func(to, subject, htmlBody string) error {
		delivered <- mocks.SentEmail{To: to, Subject: subject, Body: htmlBody}
		return nil
	}

	authService := createAuthServiceForTest(t, userRepo, nil, nil, notificationSvc)

	if _, err := authService.Signup(createTestContext(t), "newuser@example.com", "password123", "password123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Delivery happens on a goroutine; wait for it.
	select {
	case mail := <-delivered:
		if mail.To != "newuser@example.com" {
			t.Errorf("expected mail to newuser@example.com, got %s", mail.To)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("welcome mail was never sent")
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockSessionRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "unknown email",
			email:         "nobody@example.com",
			password:      "password123",
			setupMocks:    func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "session persistence fails",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
					return errors.New("redis down")
				}
			},
			expectedError: fmt.Errorf("failed to create session: %w", errors.New("redis down")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			tt.setupMocks(userRepo, sessionRepo)

			authService := createAuthServiceForTest(t, userRepo, sessionRepo, nil, nil)

			session, err := authService.Login(createTestContext(t), tt.email, tt.password)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session == nil {
				t.Fatal("session is nil")
			}
			if session.ID == "" {
				t.Error("expected a non-empty session id")
			}
			if session.UserID != createValidUser(t).ID.Hex() {
				t.Errorf("expected session user id %s, got %s", createValidUser(t).ID.Hex(), session.UserID)
			}
			if !session.IsLoggedIn {
				t.Error("expected session to be marked logged in")
			}
			if !session.ExpiresAt.After(session.CreatedAt) {
				t.Error("expected session expiry after creation time")
			}
		})
	}
}

// A missing account and a wrong password must be indistinguishable to the
// caller.
func TestAuthServiceImpl_Login_UniformFailure(t *testing.T) {
	unknownRepo := mocks.NewMockUserRepository()

	wrongPasswordRepo := mocks.NewMockUserRepository()
	wrongPasswordRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	_, errUnknown := createAuthServiceForTest(t, unknownRepo, nil, nil, nil).
		Login(createTestContext(t), "nobody@example.com", "whatever")
	_, errWrongPassword := createAuthServiceForTest(t, wrongPasswordRepo, nil, nil, nil).
		Login(createTestContext(t), "test@example.com", "badpassword")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknown.Error() != errWrongPassword.Error() {
		t.Errorf("failure modes are distinguishable: %q vs %q", errUnknown, errWrongPassword)
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	var deletedID string
	sessionRepo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deletedID = sessionID
		return nil
	}

	authService := createAuthServiceForTest(t, nil, sessionRepo, nil, nil)

	if err := authService.Logout(createTestContext(t), "session-123"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deletedID != "session-123" {
		t.Errorf("expected session-123 deleted, got %s", deletedID)
	}
}

func TestAuthServiceImpl_RequestPasswordReset(t *testing.T) {
	t.Run("known email stores a 64 char hex token with expiry", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return createValidUser(t), nil
		}

		var storedToken string
		var storedExpiry time.Time
		userRepo.SetResetTokenFunc = func(ctx context.Context, userID, token string, expiresAt time.Time) error {
			storedToken = token
			storedExpiry = expiresAt
			return nil
		}

		notificationSvc := mocks.NewMockNotificationService()
		delivered := make(chan mocks.SentEmail, 1)
		notificationSvc.SendEmailFunc = func(to, subject, htmlBody string) error {
			delivered <- mocks.SentEmail{To: to, Subject: subject, Body: htmlBody}
			return nil
		}

		authService := createAuthServiceForTest(t, userRepo, nil, nil, notificationSvc)

		if err := authService.RequestPasswordReset(createTestContext(t), "test@example.com"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(storedToken) != 64 {
			t.Errorf("expected 64 char token, got %d chars", len(storedToken))
		}
		for _, r := range storedToken {
			if !strings.ContainsRune("0123456789abcdef", r) {
				t.Errorf("token contains non-hex rune %q", r)
				break
			}
		}
		if remaining := time.Until(storedExpiry); remaining < 50*time.Minute || remaining > 70*time.Minute {
			t.Errorf("expected roughly one hour of validity, got %v", remaining)
		}

		select {
		case mail := <-delivered:
			if !strings.Contains(mail.Body, storedToken) {
				t.Error("reset mail does not contain the token link")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("reset mail was never sent")
		}
	})

	t.Run("unknown email succeeds without storing anything", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.SetResetTokenFunc = func(ctx context.Context, userID, token string, expiresAt time.Time) error {
			t.Error("SetResetToken must not be called for unknown email")
			return nil
		}

		authService := createAuthServiceForTest(t, userRepo, nil, nil, nil)

		if err := authService.RequestPasswordReset(createTestContext(t), "nobody@example.com"); err != nil {
			t.Fatalf("unknown email must not surface an error, got %v", err)
		}
	})
}

func TestAuthServiceImpl_ConsumeResetToken(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockPasswordService)
		expectedError error
	}{
		{
			name: "successful reset",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIDAndResetTokenFunc = func(ctx context.Context, userID, token string, now time.Time) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "invalid or expired token",
			setupMocks:    func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {},
			expectedError: domain.ErrResetTokenInvalid,
		},
		{
			name: "password update fails",
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIDAndResetTokenFunc = func(ctx context.Context, userID, token string, now time.Time) (*domain.User, error) {
					return createValidUser(t), nil
				}
				userRepo.ResetPasswordFunc = func(ctx context.Context, userID, passwordHash string) error {
					return errors.New("database error")
				}
			},
			expectedError: fmt.Errorf("failed to reset password: %w", errors.New("database error")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			tt.setupMocks(userRepo, passwordSvc)

			var newHash string
			if userRepo.ResetPasswordFunc == nil {
				userRepo.ResetPasswordFunc = func(ctx context.Context, userID, passwordHash string) error {
					newHash = passwordHash
					return nil
				}
			}

			authService := createAuthServiceForTest(t, userRepo, nil, passwordSvc, nil)

			err := authService.ConsumeResetToken(createTestContext(t), "64f000000000000000000001", "sometoken", "newpassword123")

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if newHash != "hashed_newpassword123" {
				t.Errorf("expected stored hash hashed_newpassword123, got %s", newHash)
			}
		})
	}
}

func TestAuthServiceImpl_ValidateResetToken(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByResetTokenFunc = func(ctx context.Context, token string, now time.Time) (*domain.User, error) {
		if token == "goodtoken" {
			return createValidUser(t), nil
		}
		return nil, domain.ErrResetTokenInvalid
	}

	authService := createAuthServiceForTest(t, userRepo, nil, nil, nil)

	user, err := authService.ValidateResetToken(createTestContext(t), "goodtoken")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Email != "test@example.com" {
		t.Errorf("expected test@example.com, got %s", user.Email)
	}

	if _, err := authService.ValidateResetToken(createTestContext(t), "badtoken"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid, got %v", err)
	}
}
