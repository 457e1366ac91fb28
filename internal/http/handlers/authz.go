package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"webshop/internal/domain"
	applog "webshop/internal/log"
	"webshop/internal/services"
)

// RequireBearer gates a route on a valid "Bearer <token>" Authorization header.
// Decoded identity claims land in Locals for downstream handlers.
func RequireBearer(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := auth.VerifyBearer(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrMissingAuth):
				applog.Security(c, "auth.header.missing", nil)
				return jsonError(c, fiber.StatusUnauthorized, "Authorization required.")
			case errors.Is(err, domain.ErrMalformedAuth):
				applog.Security(c, "auth.header.malformed", nil)
				return jsonError(c, fiber.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			default:
				applog.Security(c, "auth.token.invalid", nil)
				return jsonError(c, fiber.StatusForbidden, "Invalid token.")
			}
		}
		c.Locals("username", claims.Username)
		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
