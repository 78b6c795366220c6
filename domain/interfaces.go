package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateCart(ctx context.Context, userID string, cart Cart) error
	SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error
	FindByResetToken(ctx context.Context, token string, now time.Time) (*User, error)
	FindByIDAndResetToken(ctx context.Context, userID, token string, now time.Time) (*User, error)
	ResetPassword(ctx context.Context, userID, passwordHash string) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]Product, error)
	List(ctx context.Context, page, perPage int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines order data access operations. Orders are
// insert-only snapshots apart from the payment-status transition.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUserID(ctx context.Context, userID string) ([]Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, status PaymentStatus, ref string) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines the account and session workflow
type AuthService interface {
	Signup(ctx context.Context, email, password, confirmPassword string) (*User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, sessionID string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) (*User, error)
	ConsumeResetToken(ctx context.Context, userID, token, newPassword string) error
}

// CartService defines cart mutation and resolution operations
type CartService interface {
	AddToCart(ctx context.Context, user *User, productID string) (*User, error)
	RemoveFromCart(ctx context.Context, user *User, productID string) (*User, error)
	ClearCart(ctx context.Context, user *User) error
	ResolveCart(ctx context.Context, user *User) (ResolvedCart, error)
}

// CheckoutService converts a cart into a paid order
type CheckoutService interface {
	PlaceOrder(ctx context.Context, user *User, paymentToken string) (*Order, error)
}

// OrderService exposes a user's order history
type OrderService interface {
	ListOrders(ctx context.Context, user *User) ([]Order, error)
}

// InvoiceService streams an order invoice to the caller while persisting a
// durable copy. Filename returns the deterministic artifact name for an order.
type InvoiceService interface {
	Stream(ctx context.Context, orderID, requestingUserID string, w io.Writer) error
	Filename(orderID string) string
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// NotificationService defines mail delivery. Failures are logged by callers,
// never propagated to the user-visible flow.
type NotificationService interface {
	SendEmail(to, subject, htmlBody string) error
}

// PaymentService defines the payment collaborator's single capture operation.
type PaymentService interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// InvoiceRenderer renders an order snapshot into a paginated document.
type InvoiceRenderer interface {
	Render(order *Order, w io.Writer) error
}
