package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/joeshaw/envdecode"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Logger    LoggerConfig
	RateLimit RateLimitConfig
}

// ServerConfig configures the HTTP surface. StaticDir, when set, holds a
// built frontend (index.html and static/).
type ServerConfig struct {
	Port                 string        `env:"PORT,default=8080"`
	AppEnv               string        `env:"APP_ENV,default=development"`
	StaticDir            string        `env:"STATIC_DIR"`
	CORSOrigins          []string      `env:"CORS_ALLOWED_ORIGINS,default=*"` // semicolon separated
	SlowRequestThreshold time.Duration `env:"SLOW_REQUEST_THRESHOLD,default=200ms"`
	MetricsEnabled       bool          `env:"METRICS_ENABLED,default=true"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	TrustedProxies       []string      `env:"TRUSTED_PROXIES"` // IPs or CIDRs; empty trusts none
}

type DatabaseConfig struct {
	Driver          string        `env:"STORE_DRIVER,default=postgres"`
	URL             string        `env:"DATABASE_URL"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE,default=true"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME,default=1m"`
}

// AuthConfig holds the single shared credential pair. PasswordHash is a bcrypt
// hash and takes precedence over Password when both are set.
type AuthConfig struct {
	Username     string        `env:"AUTH_USERNAME"`
	Password     string        `env:"AUTH_PASSWORD"`
	PasswordHash string        `env:"AUTH_PASSWORD_HASH"`
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiry    time.Duration `env:"JWT_EXPIRY,default=24h"`
}

type LoggerConfig struct {
	Level    string `env:"LOG_LEVEL,default=info"`
	Encoding string `env:"LOG_ENCODING"` // json or console; empty picks by APP_ENV
}

// RateLimitConfig limits requests per client IP. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS,default=0"`
	Burst int     `env:"RATE_LIMIT_BURST,default=20"`
}

// Load decodes the process environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}
	for _, proxy := range c.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy)
			}
		}
	}
	if c.Auth.Username == "" {
		return errors.New("AUTH_USERNAME is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return errors.New("AUTH_PASSWORD or AUTH_PASSWORD_HASH is required")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}
