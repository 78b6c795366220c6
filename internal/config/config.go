package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL        string `yaml:"ttl"`
	CookieName string `yaml:"cookie_name"`
}

type ResetConfig struct {
	TokenTTL string `yaml:"token_ttl"`
}

type StripeConfig struct {
	Key      string `yaml:"key"`
	Currency string `yaml:"currency"`
}

type SendgridConfig struct {
	Key  string `yaml:"key"`
	From string `yaml:"from"`
}

type InvoiceConfig struct {
	Dir string `yaml:"dir"`
}

type ShopConfig struct {
	ItemsPerPage int `yaml:"items_per_page"`
}

type CasbinConfig struct {
	ModelPath  string `yaml:"model_path"`
	PolicyPath string `yaml:"policy_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Reset    ResetConfig    `yaml:"reset"`
	Stripe   StripeConfig   `yaml:"stripe"`
	Sendgrid SendgridConfig `yaml:"sendgrid"`
	Invoice  InvoiceConfig  `yaml:"invoice"`
	Shop     ShopConfig     `yaml:"shop"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port           string
	GinMode        string
	BaseURL        string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration
	SessionCookie  string
	ResetTokenTTL  time.Duration
	StripeKey      string
	Currency       string
	SendgridKey    string
	MailFrom       string
	InvoiceDir     string
	ItemsPerPage   int
	CasbinModel    string
	CasbinPolicy   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml and applies environment overrides for
// secrets and connection strings.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(configFile.Reset.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	itemsPerPage := configFile.Shop.ItemsPerPage
	if itemsPerPage <= 0 {
		itemsPerPage = 10
	}

	return &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		BaseURL:       env("BASE_URL", configFile.App.BaseURL),
		MongoURI:      env("MONGO_URI", configFile.Mongo.URI),
		MongoDatabase: configFile.Mongo.Database,
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       configFile.Redis.DB,
		SessionTTL:    sessionTTL,
		SessionCookie: configFile.Session.CookieName,
		ResetTokenTTL: resetTTL,
		StripeKey:     env("STRIPE_KEY", configFile.Stripe.Key),
		Currency:      configFile.Stripe.Currency,
		SendgridKey:   env("SENDGRID_KEY", configFile.Sendgrid.Key),
		MailFrom:      configFile.Sendgrid.From,
		InvoiceDir:    configFile.Invoice.Dir,
		ItemsPerPage:  itemsPerPage,
		CasbinModel:   configFile.Casbin.ModelPath,
		CasbinPolicy:  configFile.Casbin.PolicyPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
