package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "PORT", "JWT_EXPIRY", "OAUTH_ALLOW_EMAIL_LINK"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.OAuthAllowEmailLink)
	assert.EqualValues(t, 2*1024*1024, cfg.MaxUploadSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("OAUTH_ALLOW_EMAIL_LINK", "false")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.False(t, cfg.OAuthAllowEmailLink)
	assert.Equal(t, "9090", cfg.Port)
}

func TestJWTExpiryFallsBackOnGarbage(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")

	assert.Equal(t, 168*time.Hour, Load().JWTExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "app",
		DBPassword: "pw", DBName: "portfolio", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=db user=app password=pw dbname=portfolio port=5433 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
