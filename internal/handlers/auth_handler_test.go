package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/devfolio/portfolio-backend/internal/models"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires a trimmed-down router: the real guard, the auth routes and
// the projects routes, backed by an in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}))

	cfg := &config.Config{
		JWTSecret: "handler-test-secret",
		JWTExpiry: time.Hour,
	}

	authService := services.NewAuthService(db, cfg)
	projectService := services.NewProjectService(db)

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(projectService, authService)

	public := middleware.NewPublicRoutes(
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/projects",
	)

	app := fiber.New()
	api := app.Group("/api")
	api.Use(middleware.Protect(cfg, public))

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authHandler.Me)
	auth.Post("/change-password", authHandler.ChangePassword)

	api.Get("/projects", projectHandler.List)
	api.Post("/projects", projectHandler.Create)

	return app
}

func jsonRequest(t *testing.T, method, path string, body any, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestRegisterLoginMeFlow(t *testing.T) {
	app := newTestApp(t)

	// Register
	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register",
		dto.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	auth := decodeJSON[dto.AuthResponse](t, resp)
	require.NotEmpty(t, auth.AccessToken)

	// Token opens the protected profile route
	resp, err = app.Test(jsonRequest(t, "GET", "/api/auth/me", nil, auth.AccessToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decodeJSON[dto.UserResponse](t, resp)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, "local", me.Provider)

	// Wrong password is a 401
	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// No header at all is a 401 too
	resp, err = app.Test(jsonRequest(t, "GET", "/api/auth/me", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDuplicateRegisterConflict(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register",
		dto.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/register",
		dto.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.True(t, body.Error)
}

func TestChangePasswordEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register",
		dto.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, ""))
	require.NoError(t, err)
	auth := decodeJSON[dto.AuthResponse](t, resp)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/change-password",
		dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newsecret1"}, auth.AccessToken))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/change-password",
		dto.ChangePasswordRequest{OldPassword: "secret123", NewPassword: "newsecret1"}, auth.AccessToken))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/auth/login",
		dto.LoginRequest{Email: "alice@example.com", Password: "newsecret1"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProjectListShowsDraftsOnlyWithToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/auth/register",
		dto.RegisterRequest{Email: "alice@example.com", Password: "secret123"}, ""))
	require.NoError(t, err)
	auth := decodeJSON[dto.AuthResponse](t, resp)

	inactive := false
	resp, err = app.Test(jsonRequest(t, "POST", "/api/projects",
		dto.ProjectRequest{Title: "Hidden", Description: "wip", IsActive: &inactive}, auth.AccessToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	type listResponse struct {
		Data []models.Project `json:"data"`
	}

	// Anonymous visitors don't see inactive rows.
	resp, err = app.Test(jsonRequest(t, "GET", "/api/projects", nil, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeJSON[listResponse](t, resp).Data)

	// The dashboard, same route with a token, does.
	resp, err = app.Test(jsonRequest(t, "GET", "/api/projects", nil, auth.AccessToken))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decodeJSON[listResponse](t, resp).Data, 1)
}

func TestProjectCreateRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/projects",
		dto.ProjectRequest{Title: "Nope", Description: "x"}, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
