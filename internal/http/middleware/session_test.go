package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/mocks"
)

const testCookie = "shop_session"

func performSessionRequest(t *testing.T, mw *SessionMW, cookie *http.Cookie) (*httptest.ResponseRecorder, *domain.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seenUser *domain.User
	r := gin.New()
	r.GET("/protected", mw.Require(), func(c *gin.Context) {
		if u, ok := CurrentUser(c); ok {
			seenUser = u
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, seenUser
}

func TestSessionMW_Require(t *testing.T) {
	userID := bson.NewObjectID()

	t.Run("missing cookie", func(t *testing.T) {
		mw := NewSessionMW(mocks.NewMockSessionRepository(), mocks.NewMockUserRepository(), testCookie)

		w, _ := performSessionRequest(t, mw, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		// Default mock returns ErrSessionNotFound
		mw := NewSessionMW(mocks.NewMockSessionRepository(), mocks.NewMockUserRepository(), testCookie)

		w, _ := performSessionRequest(t, mw, &http.Cookie{Name: testCookie, Value: "stale"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session loads a fresh user into the context", func(t *testing.T) {
		sessionRepo := mocks.NewMockSessionRepository()
		sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
			require.Equal(t, "live-session", sessionID)
			return &domain.Session{ID: sessionID, UserID: userID.Hex(), IsLoggedIn: true}, nil
		}

		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
			require.Equal(t, userID.Hex(), id)
			return &domain.User{ID: userID, Email: "test@example.com", Role: domain.RoleUser}, nil
		}

		mw := NewSessionMW(sessionRepo, userRepo, testCookie)

		w, seenUser := performSessionRequest(t, mw, &http.Cookie{Name: testCookie, Value: "live-session"})

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seenUser)
		assert.Equal(t, "test@example.com", seenUser.Email)
	})

	t.Run("session for a deleted user", func(t *testing.T) {
		sessionRepo := mocks.NewMockSessionRepository()
		sessionRepo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
			return &domain.Session{ID: sessionID, UserID: userID.Hex(), IsLoggedIn: true}, nil
		}
		// Default user repo mock returns ErrUserNotFound
		mw := NewSessionMW(sessionRepo, mocks.NewMockUserRepository(), testCookie)

		w, _ := performSessionRequest(t, mw, &http.Cookie{Name: testCookie, Value: "live-session"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
