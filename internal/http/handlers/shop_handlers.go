package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/http/middleware"
)

// ShopHandlers handles catalog, cart, checkout, order and invoice requests
type ShopHandlers struct {
	productRepo  domain.ProductRepository
	cartSvc      domain.CartService
	checkoutSvc  domain.CheckoutService
	orderSvc     domain.OrderService
	invoiceSvc   domain.InvoiceService
	itemsPerPage int
}

// NewShopHandlers creates new shop handlers
func NewShopHandlers(
	productRepo domain.ProductRepository,
	cartSvc domain.CartService,
	checkoutSvc domain.CheckoutService,
	orderSvc domain.OrderService,
	invoiceSvc domain.InvoiceService,
	itemsPerPage int,
) *ShopHandlers {
	return &ShopHandlers{
		productRepo:  productRepo,
		cartSvc:      cartSvc,
		checkoutSvc:  checkoutSvc,
		orderSvc:     orderSvc,
		invoiceSvc:   invoiceSvc,
		itemsPerPage: itemsPerPage,
	}
}

// AddCartItemRequest represents an add-to-cart request
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CheckoutRequest represents a checkout request
type CheckoutRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}

// ListProducts returns one catalog page with pagination flags
func (h *ShopHandlers) ListProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	products, err := h.productRepo.List(c.Request.Context(), page, h.itemsPerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	total, err := h.productRepo.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	lastPage := int((total + int64(h.itemsPerPage) - 1) / int64(h.itemsPerPage))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"products":  products,
			"page":      page,
			"last_page": lastPage,
			"total":     total,
			"has_next":  page < lastPage,
			"has_prev":  page > 1,
		},
	})
}

// GetProduct returns a single product
func (h *ShopHandlers) GetProduct(c *gin.Context) {
	product, err := h.productRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// GetCart returns the authenticated user's cart resolved against the catalog
func (h *ShopHandlers) GetCart(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	resolved, err := h.cartSvc.ResolveCart(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items": resolved.Items,
			"total": resolved.Total(),
		},
	})
}

// AddCartItem adds one unit of a product to the cart
func (h *ShopHandlers) AddCartItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.cartSvc.AddToCart(c.Request.Context(), user, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cart": updated.Cart}})
}

// RemoveCartItem removes a product line from the cart. Removing a product
// that is not in the cart succeeds without changes.
func (h *ShopHandlers) RemoveCartItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	updated, err := h.cartSvc.RemoveFromCart(c.Request.Context(), user, c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cart": updated.Cart}})
}

// Checkout places an order for the authenticated user's cart
func (h *ShopHandlers) Checkout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	order, err := h.checkoutSvc.PlaceOrder(c.Request.Context(), user, req.PaymentToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCartEmpty):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
		case errors.Is(err, domain.ErrPaymentDeclined):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment was declined"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": order})
}

// ListOrders returns the authenticated user's order history, newest first
func (h *ShopHandlers) ListOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	orders, err := h.orderSvc.ListOrders(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"orders": orders}})
}

// DownloadInvoice streams the PDF invoice for one of the user's own orders
func (h *ShopHandlers) DownloadInvoice(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	orderID := c.Param("id")
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+h.invoiceSvc.Filename(orderID)+`"`)

	err := h.invoiceSvc.Stream(c.Request.Context(), orderID, user.ID.Hex(), c.Writer)
	if err != nil {
		if c.Writer.Written() {
			// Bytes already on the wire; nothing sensible left to send.
			c.Abort()
			return
		}
		c.Header("Content-Disposition", "")
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, domain.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this invoice"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		}
	}
}
