// Package authctx reads the identity the JWT guard attached to a request.
package authctx

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetUserID extracts the user ID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uint, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return 0, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("malformed sub claim")
	}
	return uint(id), nil
}

// GetEmail extracts the email claim from context.
func GetEmail(c *fiber.Ctx) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}
	email, ok := claims["email"].(string)
	if !ok {
		return "", errors.New("missing email claim")
	}
	return email, nil
}

// GetClaims returns the verified JWT claims the guard stored in locals.
func GetClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
