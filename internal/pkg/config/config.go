package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// AuthConfig configures the auth service (token issuer and validator).
type AuthConfig struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DBPath string `env:"DB_PATH, default=/app/data/auth.db"`
	// CRMURL is where the browser is sent after a successful login.
	CRMURL string `env:"CRM_URL, default=http://localhost:5001/dashboard"`
	// PasswordScheme is "plain" (stored verbatim) or "bcrypt".
	PasswordScheme string `env:"PASSWORD_SCHEME, default=plain"`

	Redis RedisConfig
}

// RedisConfig is optional; an empty address disables the flash store.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// CRMConfig configures the resource service.
type CRMConfig struct {
	Port     string `env:"PORT,      default=5001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthServiceConfig
	Mongo MongoConfig
}

// AuthServiceConfig holds the two addresses of the auth service. They are
// never interchangeable: External is for browser redirects, Internal for
// server-to-server validation calls.
type AuthServiceConfig struct {
	External        string        `env:"AUTH_SERVICE_URL,      default=http://localhost:5000"`
	Internal        string        `env:"AUTH_SERVICE_INNER,    default=http://auth_service:5000"`
	ValidateTimeout time.Duration `env:"AUTH_VALIDATE_TIMEOUT, default=1500ms"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://mongo:27017/"`
	Database string `env:"MONGO_DB,  default=crm"`
}

// LoadAuth reads the auth service configuration from the environment.
func LoadAuth(ctx context.Context) (*AuthConfig, error) {
	var cfg AuthConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load auth configuration: %w", err)
	}
	return &cfg, nil
}

// LoadCRM reads the resource service configuration from the environment.
func LoadCRM(ctx context.Context) (*CRMConfig, error) {
	var cfg CRMConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load crm configuration: %w", err)
	}
	return &cfg, nil
}

// Pretty reports whether logs should be written for humans.
func Pretty(env string) bool {
	return env == "development"
}
