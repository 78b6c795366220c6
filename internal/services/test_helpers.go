package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/mocks"
)

// testLogger returns a logger that swallows output during tests
func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createAuthServiceForTest creates an AuthService with mock dependencies for testing
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	notificationSvc domain.NotificationService) domain.AuthService {
	t.Helper()

	// Use provided mocks or create defaults
	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if notificationSvc == nil {
		notificationSvc = mocks.NewMockNotificationService()
	}

	return NewAuthService(userRepo, sessionRepo, passwordSvc, notificationSvc,
		time.Hour, time.Hour, "http://localhost:3000", testLogger(t))
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           testObjectID(t, "64f000000000000000000001"),
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		Role:         domain.RoleUser,
		Cart:         domain.Cart{Items: []domain.CartItem{}},
		CreatedAt:    time.Now().Add(-24 * time.Hour),
	}
}

// createProduct creates a catalog product with a fixed id for testing
func createProduct(t *testing.T, idHex, title string, price float64) domain.Product {
	t.Helper()

	return domain.Product{
		ID:    testObjectID(t, idHex),
		Title: title,
		Price: price,
	}
}

// testObjectID parses a hex object id, failing the test on bad input
func testObjectID(t *testing.T, hex string) bson.ObjectID {
	t.Helper()

	oid, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("bad test object id %q: %v", hex, err)
	}
	return oid
}

// createTestContext creates a context for testing
func createTestContext(t *testing.T) context.Context {
	t.Helper()
	return context.Background()
}
