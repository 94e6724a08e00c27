package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okaydivyansh/ecell-quiz/src/core/auth"
	"github.com/okaydivyansh/ecell-quiz/src/core/helpers"
)

const usernameKey = "username"

// Protected validates the bearer token carried in the Authorization header
// and attaches the verified username to the request context. Clients send
// the raw token, without a "Bearer " scheme prefix. Missing or invalid
// tokens always yield 401.
func Protected(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		if raw == "" {
			return helpers.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid token", nil)
		}

		username, err := tokens.Verify(raw)
		if err != nil {
			return helpers.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid token", err)
		}

		c.Locals(usernameKey, username)
		return c.Next()
	}
}

// Username returns the identity attached by Protected, or "" when the
// request did not pass through it.
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals(usernameKey).(string)
	return username
}
