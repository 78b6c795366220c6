package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/shopsvc/internal/http/handlers"
	"github.com/you/shopsvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, sh *handlers.ShopHandlers, admh *handlers.AdminHandlers, smw *middleware.SessionMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New(); r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context){ c.JSON(200, gin.H{"ok": true}) })

	// Public catalog
	r.GET("/products", sh.ListProducts)
	r.GET("/products/:id", sh.GetProduct)

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/logout", ah.Logout)
	auth.POST("/reset", ah.RequestReset)
	auth.GET("/reset/:token", ah.ValidateReset)
	auth.POST("/reset/confirm", ah.ConfirmReset)

	v := r.Group("/").Use(smw.Require())
	v.GET("/auth/me", ah.Me)
	v.GET("/cart", sh.GetCart)
	v.POST("/cart/items", sh.AddCartItem)
	v.DELETE("/cart/items/:productId", sh.RemoveCartItem)
	v.POST("/checkout", sh.Checkout)
	v.GET("/orders", sh.ListOrders)
	v.GET("/orders/:id/invoice", sh.DownloadInvoice)

	adm := r.Group("/admin").Use(smw.Require(), cb.Enforce())
	adm.POST("/products", admh.CreateProduct)
	adm.PUT("/products/:id", admh.UpdateProduct)
	adm.DELETE("/products/:id", admh.DeleteProduct)

	return r
}
