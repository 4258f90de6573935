package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	ServerPort string `env:"PORT" envDefault:"5000"`

	MongoURI      string `env:"MONGO_URI"`
	MongoUser     string `env:"DB_USER"`
	MongoPass     string `env:"DB_PASS"`
	MongoHost     string `env:"MONGO_HOST" envDefault:"cluster0.tx9lkv1.mongodb.net"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"campMed"`

	JWTSecret       string `env:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	CampCacheTTL    time.Duration `env:"CAMP_CACHE_TTL" envDefault:"5m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"30"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	CORSOrigins  []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	PhoneRegion  string   `env:"PHONE_REGION" envDefault:"BD"`
	OTELEndpoint string   `env:"OTEL_ENDPOINT"`
	SwaggerHost  string   `env:"SWAGGER_HOST"`
}

// Load reads an optional .env file and builds Config from the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.MongoURI == "" && (cfg.MongoUser == "" || cfg.MongoPass == "") {
		return nil, errors.New("MONGO_URI or DB_USER and DB_PASS are required")
	}
	return cfg, nil
}

// MongoConnectionURI returns MONGO_URI when set, otherwise an Atlas SRV URI
// assembled from DB_USER, DB_PASS and MONGO_HOST.
func (c *Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(c.MongoUser),
		url.QueryEscape(c.MongoPass),
		c.MongoHost,
	)
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + c.ServerPort
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
