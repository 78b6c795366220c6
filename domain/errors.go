package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Password-reset errors
var (
	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Catalog and cart errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartEmpty       = errors.New("cart is empty")
)

// Order and payment errors
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentDeclined    = errors.New("payment was declined")
	ErrInvalidTransition  = errors.New("invalid payment status transition")
)

// Authorization errors
var (
	ErrNotAuthorized = errors.New("not authorized")
)
