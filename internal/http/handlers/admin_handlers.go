package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/http/middleware"
)

// AdminHandlers handles the admin product management endpoints
type AdminHandlers struct {
	productRepo domain.ProductRepository
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(productRepo domain.ProductRepository) *AdminHandlers {
	return &AdminHandlers{productRepo: productRepo}
}

// ProductRequest represents a product create/update payload
type ProductRequest struct {
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// CreateProduct adds a product to the catalog, owned by the creating admin
func (h *AdminHandlers) CreateProduct(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	product := &domain.Product{
		UserID:      user.ID,
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.productRepo.Create(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

// UpdateProduct overwrites the mutable fields of an existing product
func (h *AdminHandlers) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	product.Title = req.Title
	product.Price = req.Price
	product.Description = req.Description
	product.ImageURL = req.ImageURL
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// DeleteProduct removes a product from the catalog. Carts holding the
// product keep their line; resolution prunes it at read time.
func (h *AdminHandlers) DeleteProduct(c *gin.Context) {
	if err := h.productRepo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Product deleted successfully",
		},
	})
}
