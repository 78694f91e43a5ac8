// Package middleware provides authentication, logging and rate-limiting
// middleware for the application.
package middleware

import (
	"strings"

	"devconnect/internal/auth"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired returns a middleware that enforces authentication for
// protected routes. On success the resolved user id is stored in
// c.Locals("userID").
func AuthRequired(tokens auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Authorization header required"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			return models.RespondWithError(c,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		c.Locals("userID", userID)

		return c.Next()
	}
}
