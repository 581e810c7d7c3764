// Package middleware provides HTTP middleware for the fiber app, including
// bearer-token authentication on staff-facing routes.
package middleware

import (
	"strings"

	"permitdesk/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber.Ctx locals key the validated claims are stored under.
const ClaimsKey = "claims"

// AuthMiddleware validates bearer tokens and attaches the staff claims to
// the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler rejects requests without a valid, unrevoked bearer token.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := m.authService.ValidateAccessToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals(ClaimsKey, claims)
	return c.Next()
}
