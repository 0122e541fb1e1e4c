package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/config"
)

// AdminToken middleware that requires the admin token header.
func AdminToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		token := c.Get("x-token")
		if token != "" && token == cfg.AdminToken {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}
}
