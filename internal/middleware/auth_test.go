package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func TestPublicRoutesContains(t *testing.T) {
	public := NewPublicRoutes(
		"GET /api/health",
		"POST /api/auth/login",
		"GET /api/blogs/slug/*",
	)

	tests := []struct {
		method, path string
		want         bool
	}{
		{"GET", "/api/health", true},
		{"POST", "/api/health", false},
		{"POST", "/api/auth/login", true},
		{"GET", "/api/auth/login", false},
		{"GET", "/api/blogs/slug/my-post", true},
		{"GET", "/api/blogs/slug/a/b", true},
		{"GET", "/api/blogs/slug", false},
		{"GET", "/api/blogs", false},
		{"DELETE", "/api/blogs/1", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, public.Contains(tt.method, tt.path),
			"%s %s", tt.method, tt.path)
	}
}

func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret}
	public := NewPublicRoutes("GET /api/public")

	app := fiber.New()
	api := app.Group("/api")
	api.Use(Protect(cfg, public))
	api.Get("/public", func(c *fiber.Ctx) error { return c.SendString("open") })
	api.Get("/private", func(c *fiber.Ctx) error { return c.SendString("secret") })
	return app
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1",
		"email": "alice@example.com",
		"exp":   exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestGuardDefaultDeny(t *testing.T) {
	app := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGuardPublicRouteSkipsToken(t *testing.T) {
	app := newGuardedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/public", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardAcceptsValidToken(t *testing.T) {
	app := newGuardedApp(t)

	req := httptest.NewRequest("GET", "/api/private", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardRejectsBadTokens(t *testing.T) {
	app := newGuardedApp(t)

	tokens := map[string]string{
		"expired":      signToken(t, testSecret, time.Now().Add(-time.Hour)),
		"wrong secret": signToken(t, "other-secret", time.Now().Add(time.Hour)),
		"garbage":      "not.a.jwt",
	}
	for name, token := range tokens {
		req := httptest.NewRequest("GET", "/api/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, name)
	}
}
