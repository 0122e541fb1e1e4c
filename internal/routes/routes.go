package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/routes/api"
	"github.com/lk16/ludo/api/internal/routes/ws"
)

func healthHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)

	// Health check
	app.Get("/health", healthHandler)
}
