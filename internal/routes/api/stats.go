package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/repository"
)

// GetStats returns per-color win counters.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewHistoryRepository(c)

	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
