package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/shopsvc/domain"
)

// SessionMW resolves the session cookie into an authenticated user for
// downstream handlers
type SessionMW struct {
	sessionRepo domain.SessionRepository
	userRepo    domain.UserRepository
	cookieName  string
}

// NewSessionMW creates new session middleware wrapper
func NewSessionMW(sessionRepo domain.SessionRepository, userRepo domain.UserRepository, cookieName string) *SessionMW {
	return &SessionMW{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cookieName:  cookieName,
	}
}

// Require returns middleware that rejects requests without a live session.
// The user document is re-fetched from the store on every request so role
// and cart changes take effect immediately; the session only carries the id.
func (mw *SessionMW) Require() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		sessionID, err := c.Cookie(mw.cookieName)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		session, err := mw.sessionRepo.FindByID(c.Request.Context(), sessionID)
		if err != nil || !session.IsLoggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}

		user, err := mw.userRepo.FindByID(c.Request.Context(), session.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID.Hex())
		c.Set("user_role", user.Role)
		c.Set("session_id", session.ID)

		c.Next()
	})
}

// CurrentUser pulls the authenticated user set by Require out of the
// request context.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
