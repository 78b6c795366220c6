package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/http/middleware"
)

// AuthHandlers handles account and session HTTP requests
type AuthHandlers struct {
	authSvc    domain.AuthService
	cookieName string
	sessionTTL time.Duration
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, cookieName string, sessionTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		authSvc:    authSvc,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResetRequest represents a password reset request
type ResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetConfirmRequest represents the final step of a password reset
type ResetConfirmRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Signup handles account creation
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Signup(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPasswordMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Passwords do not match"})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "An account with this email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Account created successfully",
			"user_id": user.ID.Hex(),
		},
	})
}

// Login handles user login and sets the session cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	// Opaque session id only; no user data leaves the server in the cookie.
	c.SetCookie(h.cookieName, session.ID, int(h.sessionTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged in successfully",
		},
	})
}

// Logout deletes the session and clears the cookie. Logging out without a
// live session is not an error.
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(h.cookieName)
	if err == nil && sessionID != "" {
		if err := h.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}

// Me returns the authenticated user's profile (requires session)
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":         user.ID.Hex(),
			"email":      user.Email,
			"role":       user.Role,
			"created_at": user.CreatedAt,
		},
	})
}

// RequestReset starts the password reset flow. The response never discloses
// whether the email belongs to an account.
func (h *AuthHandlers) RequestReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process reset request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "If that account exists, a reset link has been sent",
		},
	})
}

// ValidateReset checks a reset token and returns the ids needed for the
// confirm step
func (h *AuthHandlers) ValidateReset(c *gin.Context) {
	token := c.Param("token")

	user, err := h.authSvc.ValidateResetToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reset token is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate reset token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id": user.ID.Hex(),
			"token":   token,
		},
	})
}

// ConfirmReset sets the new password if the token is still valid
func (h *AuthHandlers) ConfirmReset(c *gin.Context) {
	var req ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ConsumeResetToken(c.Request.Context(), req.UserID, req.Token, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrResetTokenInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reset token is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Password updated successfully",
		},
	})
}
