package handlers

import (
	"errors"
	"time"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/devfolio/portfolio-backend/internal/oauth"
	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const stateCookie = "oauth_state"

// OAuthHandler drives the authorization-code flow for every configured
// provider. The provider name comes from the route parameter, the resolver
// from the registry.
type OAuthHandler struct {
	authService *services.AuthService
	registry    *oauth.Registry
	cfg         *config.Config
}

func NewOAuthHandler(authService *services.AuthService, registry *oauth.Registry, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{authService: authService, registry: registry, cfg: cfg}
}

// Redirect sends the client to the provider's consent page.
func (h *OAuthHandler) Redirect(c *fiber.Ctx) error {
	resolver, err := h.registry.Get(c.Params("provider"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown or unconfigured provider",
		})
	}

	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(resolver.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// Callback exchanges the code, resolves the profile to a local user and
// issues the session token.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	resolver, err := h.registry.Get(c.Params("provider"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown or unconfigured provider",
		})
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid oauth state",
		})
	}
	c.ClearCookie(stateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing authorization code",
		})
	}

	profile, err := resolver.FetchProfile(c.Context(), code)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to resolve provider profile",
		})
	}

	resp, err := h.authService.ResolveOAuthProfile(profile)
	if err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if h.cfg.OAuthSuccessRedirect != "" {
		return c.Redirect(h.cfg.OAuthSuccessRedirect+"#accessToken="+resp.AccessToken, fiber.StatusFound)
	}
	return c.JSON(resp)
}
