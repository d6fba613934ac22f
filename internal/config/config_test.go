package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiresIn)
	assert.True(t, cfg.AllowRegistration)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/site.db")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("ALLOW_REGISTRATION", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiresIn)
	assert.False(t, cfg.AllowRegistration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "/tmp/site.db", cfg.DSN())
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestLoadWebDefaults(t *testing.T) {
	t.Setenv("WEB_ADDR", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "")

	cfg, err := LoadWeb()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.False(t, cfg.CookieSecure)
}
