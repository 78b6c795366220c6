package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a customer (or admin) account. The cart is embedded in the
// user document; bson field names match the users collection schema.
type User struct {
	ID                  bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email               string        `bson:"email" json:"email"`
	PasswordHash        string        `bson:"password" json:"-"`
	Role                string        `bson:"role" json:"role"`
	ResetToken          string        `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiresAt *time.Time    `bson:"resetTokenExpiration,omitempty" json:"-"`
	Cart                Cart          `bson:"cart" json:"cart"`
	CreatedAt           time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt           time.Time     `bson:"updatedAt" json:"updated_at"`
}

// Roles assignable to a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartItem is one line of a cart: a product reference and how many of it.
type CartItem struct {
	ProductID bson.ObjectID `bson:"productId" json:"product_id"`
	Quantity  int           `bson:"quantity" json:"quantity"`
}

// Cart holds the line items of a user's cart, ordered by insertion.
// A product appears in at most one line; adding an existing product
// increments its quantity instead of appending a duplicate.
type Cart struct {
	Items []CartItem `bson:"items" json:"items"`
}

// Add merges one unit of the product into the cart.
func (c *Cart) Add(productID bson.ObjectID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: 1})
}

// Remove drops the line for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID bson.ObjectID) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// Quantity returns how many units of productID the cart holds, 0 if none.
func (c *Cart) Quantity(productID bson.ObjectID) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Product represents a catalog item owned by an admin user.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      bson.ObjectID `bson:"userId" json:"user_id"`
	Title       string        `bson:"title" json:"title"`
	Price       float64       `bson:"price" json:"price"`
	Description string        `bson:"description" json:"description"`
	ImageURL    string        `bson:"imageUrl" json:"image_url"`
	CreatedAt   time.Time     `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updated_at"`
}

// ResolvedItem is a cart line joined with its full product document.
type ResolvedItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns quantity × unit price for this line.
func (r ResolvedItem) Subtotal() float64 {
	return float64(r.Quantity) * r.Product.Price
}

// ResolvedCart is a cart with every line resolved to a product snapshot.
// It is the input to checkout and the source of the order snapshot.
type ResolvedCart struct {
	Items []ResolvedItem `json:"items"`
}

// Total returns the sum of all line subtotals.
func (r ResolvedCart) Total() float64 {
	var sum float64
	for _, it := range r.Items {
		sum += it.Subtotal()
	}
	return sum
}

// IsEmpty reports whether the resolved cart has no line items.
func (r ResolvedCart) IsEmpty() bool {
	return len(r.Items) == 0
}

// PaymentStatus tracks whether an order's charge went through.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

var validNext = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending: {PaymentPaid: true, PaymentFailed: true},
	PaymentPaid:    {},
	PaymentFailed:  {},
}

// CanTransition reports whether a payment status change is legal.
// Terminal states never transition again.
func CanTransition(from, to PaymentStatus) bool {
	return validNext[from][to]
}

// OrderUser is the denormalized buyer reference stored inside an order.
type OrderUser struct {
	UserID bson.ObjectID `bson:"userId" json:"user_id"`
	Email  string        `bson:"email" json:"email"`
}

// OrderItem is a full product copy plus quantity, frozen at checkout time.
type OrderItem struct {
	Product  Product `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order is the immutable snapshot created once per completed checkout.
// Only PaymentStatus and PaymentRef change after insertion, and only
// pending → paid|failed.
type Order struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	User          OrderUser     `bson:"user" json:"user"`
	Items         []OrderItem   `bson:"products" json:"items"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"payment_status"`
	PaymentRef    string        `bson:"paymentRef,omitempty" json:"payment_ref,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt" json:"created_at"`
}

// Total recomputes the grand total from the snapshot. Stored totals are
// never trusted when rendering invoices.
func (o *Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += float64(it.Quantity) * it.Product.Price
	}
	return sum
}

// NewOrder freezes a resolved cart into an order snapshot for the given user.
func NewOrder(user *User, cart ResolvedCart) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{Product: it.Product, Quantity: it.Quantity})
	}
	return &Order{
		User:          OrderUser{UserID: user.ID, Email: user.Email},
		Items:         items,
		PaymentStatus: PaymentPending,
		CreatedAt:     time.Now(),
	}
}

// Session represents server-side session state referenced by an opaque
// cookie value. Only the user id is authoritative; the user document is
// re-fetched from the store on every request.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	IsLoggedIn bool      `json:"is_logged_in"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ChargeRequest is the payment-capture request sent to the payment
// collaborator. Amount is in minor currency units.
type ChargeRequest struct {
	AmountMinorUnits int64
	Currency         string
	Description      string
	SourceToken      string
	OrderID          string
}

// ChargeResult carries the collaborator's reference for a captured charge.
type ChargeResult struct {
	Ref string
}
