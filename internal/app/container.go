package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you/shopsvc/domain"
	"github.com/you/shopsvc/internal/config"
	"github.com/you/shopsvc/internal/infrastructure/auth"
	"github.com/you/shopsvc/internal/infrastructure/database"
	"github.com/you/shopsvc/internal/infrastructure/documents"
	"github.com/you/shopsvc/internal/infrastructure/notifications"
	"github.com/you/shopsvc/internal/infrastructure/payments"
	"github.com/you/shopsvc/internal/infrastructure/repositories"
	"github.com/you/shopsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	CasbinSvc   *auth.CasbinService

	// Repositories
	UserRepo    domain.UserRepository
	ProductRepo domain.ProductRepository
	OrderRepo   domain.OrderRepository
	SessionRepo domain.SessionRepository

	// Services
	PasswordSvc     domain.PasswordService
	NotificationSvc domain.NotificationService
	PaymentSvc      domain.PaymentService
	AuthSvc         domain.AuthService
	CartSvc         domain.CartService
	CheckoutSvc     domain.CheckoutService
	OrderSvc        domain.OrderService
	InvoiceSvc      domain.InvoiceService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}

	// Initialize infrastructure
	if err := container.initMongo(ctx); err != nil {
		return nil, err
	}
	if err := container.initRedis(ctx); err != nil {
		return nil, err
	}
	if err := container.initCasbin(); err != nil {
		return nil, err
	}

	// Initialize repositories
	container.initRepositories()

	// Initialize services
	container.initServices()

	return container, nil
}

func (c *Container) initMongo(ctx context.Context) error {
	client, db, err := database.OpenMongo(ctx, c.Config.MongoURI, c.Config.MongoDatabase)
	if err != nil {
		return err
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	c.MongoClient = client
	c.MongoDB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return c.RedisClient.Ping(ctx).Err()
}

func (c *Container) initCasbin() error {
	cas, err := auth.NewCasbinService(c.Config.CasbinModel, c.Config.CasbinPolicy)
	if err != nil {
		return err
	}
	c.CasbinSvc = cas
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.MongoDB)
	c.ProductRepo = repositories.NewProductRepository(c.MongoDB)
	c.OrderRepo = repositories.NewOrderRepository(c.MongoDB)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.NotificationSvc = notifications.NewSendgridService(c.Config.SendgridKey, c.Config.MailFrom)
	c.PaymentSvc = payments.NewStripeService(c.Config.StripeKey)

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.NotificationSvc,
		c.Config.SessionTTL,
		c.Config.ResetTokenTTL,
		c.Config.BaseURL,
		c.Logger,
	)
	c.CartSvc = services.NewCartService(c.UserRepo, c.ProductRepo)
	c.CheckoutSvc = services.NewCheckoutService(
		c.CartSvc,
		c.OrderRepo,
		c.PaymentSvc,
		c.Config.Currency,
		c.Logger,
	)
	c.OrderSvc = services.NewOrderService(c.OrderRepo)
	c.InvoiceSvc = services.NewInvoiceService(c.OrderRepo, documents.NewPDFInvoiceRenderer(), c.Config.InvoiceDir)
}

// Close closes all connections
func (c *Container) Close(ctx context.Context) error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.MongoClient != nil {
		return c.MongoClient.Disconnect(ctx)
	}

	return nil
}
