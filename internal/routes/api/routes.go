package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/middleware"
)

// SetupRoutes sets up the JSON API routes.
func SetupRoutes(app *fiber.App) {
	group := app.Group("/api")

	group.Post("/rooms", CreateRoom)
	group.Get("/rooms/:code", GetRoom)
	group.Get("/rooms/:code/history", GetHistory)
	group.Post("/rooms/:code/join", JoinRoom)
	group.Post("/rooms/:code/bots", AddBot)
	group.Post("/rooms/:code/leave", LeaveRoom)
	group.Post("/rooms/:code/start", StartGame)
	group.Post("/rooms/:code/roll", RollDice)
	group.Post("/rooms/:code/move", MoveToken)
	group.Post("/rooms/:code/end-turn", EndTurn)

	group.Get("/stats", middleware.AdminToken(), GetStats)
}
