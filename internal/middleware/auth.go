package middleware

import (
	"strings"

	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const usernameKey = "username"

// RequireAuth verifies the bearer token and stores the authenticated
// username in the request locals. Handlers pass it on as an explicit
// parameter; nothing below the HTTP layer reads ambient identity.
func RequireAuth(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing bearer token")
		}

		username, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(usernameKey, username)
		return c.Next()
	}
}

// Username returns the authenticated username set by RequireAuth.
func Username(c *fiber.Ctx) string {
	if username, ok := c.Locals(usernameKey).(string); ok {
		return username
	}
	return ""
}
