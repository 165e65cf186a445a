package middleware

import (
	"strings"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// PublicRoutes is the explicit opt-out list consulted by the JWT guard.
// Entries are "METHOD /path"; a trailing "/*" matches any suffix.
type PublicRoutes map[string]struct{}

func NewPublicRoutes(entries ...string) PublicRoutes {
	p := make(PublicRoutes, len(entries))
	for _, e := range entries {
		p[e] = struct{}{}
	}
	return p
}

func (p PublicRoutes) Contains(method, path string) bool {
	if _, ok := p[method+" "+path]; ok {
		return true
	}
	for entry := range p {
		if prefix, found := strings.CutSuffix(entry, "/*"); found {
			if strings.HasPrefix(method+" "+path, prefix+"/") {
				return true
			}
		}
	}
	return false
}

// Protect installs the default-deny JWT guard. Every request must carry a
// valid bearer token unless its method+path is in the public table. Verified
// claims end up in c.Locals("user") for authctx to read.
func Protect(cfg *config.Config, public PublicRoutes) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		Filter: func(c *fiber.Ctx) bool {
			return public.Contains(c.Method(), c.Path())
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// One shape for missing, malformed, expired and badly signed
			// tokens alike.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
