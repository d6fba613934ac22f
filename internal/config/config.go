package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the API server settings.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | sqlite
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"portfolio"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	DBPath     string `env:"DB_PATH" envDefault:"portfolio.db"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"supersecret_change_me"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"168h"`

	AdminEmail        string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword     string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminFullName     string `env:"ADMIN_FULL_NAME" envDefault:"Administrator"`
	AllowRegistration bool   `env:"ALLOW_REGISTRATION" envDefault:"true"`

	CORSOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	FormsHMACSecret string   `env:"FORMS_HMAC_SECRET"`

	Log LogConfig
}

// WebConfig holds the frontend server settings.
type WebConfig struct {
	Addr         string        `env:"WEB_ADDR" envDefault:":8080"`
	APIBaseURL   string        `env:"API_BASE_URL" envDefault:"http://localhost:5000"`
	APITimeout   time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	Log LogConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json | console
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTExpiresIn <= 0 {
		cfg.JWTExpiresIn = 7 * 24 * time.Hour
	}
	return cfg, nil
}

func LoadWeb() (*WebConfig, error) {
	cfg := &WebConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBPath
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
