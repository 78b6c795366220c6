package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/shopsvc/internal/config"
	httpx "github.com/you/shopsvc/internal/http"
	"github.com/you/shopsvc/internal/http/handlers"
	"github.com/you/shopsvc/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

	// Initialize handlers
	authH := handlers.NewAuthHandlers(c.AuthSvc, cfg.SessionCookie, cfg.SessionTTL)
	shopH := handlers.NewShopHandlers(c.ProductRepo, c.CartSvc, c.CheckoutSvc, c.OrderSvc, c.InvoiceSvc, cfg.ItemsPerPage)
	adminH := handlers.NewAdminHandlers(c.ProductRepo)

	// Initialize middleware
	sessionMW := middleware.NewSessionMW(c.SessionRepo, c.UserRepo, cfg.SessionCookie)
	casbinMW := middleware.NewCasbinMW(c.CasbinSvc.E)

	// Build router
	r := httpx.BuildRouter(authH, shopH, adminH, sessionMW, casbinMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
