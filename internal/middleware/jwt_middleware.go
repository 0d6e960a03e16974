package middleware

import (
	"strings"

	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// LocalCallerID is the fiber.Ctx Locals key holding the caller's user ID.
const LocalCallerID = "user_id"

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return "", false
	}
	return parts[1], true
}

// Identify resolves the caller identity, if any, and stores it in Locals. It
// never rejects a request: public reads pass through and mutating handlers
// decide for themselves.
func Identify(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c); ok {
			if userID := authService.Identify(token); userID != "" {
				c.Locals(LocalCallerID, userID)
			}
		}
		return c.Next()
	}
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
		}
		userID := authService.Identify(token)
		if userID == "" {
			zlog.Debug().Str("path", c.Path()).Msg("rejected invalid or expired token")
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
		}
		c.Locals(LocalCallerID, userID)
		return c.Next()
	}
}

// CallerID returns the identity stored by Identify or AuthRequired, or "".
func CallerID(c *fiber.Ctx) string {
	userID, _ := c.Locals(LocalCallerID).(string)
	return userID
}
