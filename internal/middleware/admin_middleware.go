package middleware

import (
	"sacred-journey/internal/policy"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware rejects callers that are authenticated but not admins.
// Runs after AuthMiddleware, so a missing claim means a wiring mistake
// and is treated as unauthenticated rather than forbidden.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		if !policy.CanWrite(claims.Role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied: Admin role required",
			})
		}

		return c.Next()
	}
}
