package handlers

import (
	"strings"

	"github.com/devfolio/portfolio-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// isAuthenticated reports whether the request carries a valid bearer token.
// Public listing routes skip the guard entirely, so handlers that show
// drafts/inactive rows to the dashboard check the header themselves.
func isAuthenticated(c *fiber.Ctx, authService *services.AuthService) bool {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return false
	}
	_, err := authService.VerifyAccessToken(token)
	return err == nil
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	return uint(id), nil
}
