package repository

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/models"
	"github.com/lk16/ludo/api/internal/services"
)

const statsKey = "ludo_stats"

// HistoryRepository persists the append-only move history in Postgres and
// keeps per-color win counters in Redis.
type HistoryRepository struct {
	services *services.Services
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(c *fiber.Ctx) *HistoryRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &HistoryRepository{
		services: services,
	}
}

func NewHistoryRepositoryFromServices(services *services.Services) *HistoryRepository {
	return &HistoryRepository{
		services: services,
	}
}

// AppendMove appends one move record.
func (repo *HistoryRepository) AppendMove(ctx context.Context, record models.MoveRecord) error {
	pgConn := repo.services.Postgres

	query := `
		INSERT INTO moves (room_code, player_id, nickname, color, token_id, from_position, to_position, captured, timestamp)
		VALUES (:room_code, :player_id, :nickname, :color, :token_id, :from_position, :to_position, :captured, :timestamp);
	`

	if _, err := pgConn.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("error inserting move record: %w", err)
	}

	return nil
}

// GetMoves returns the move history of a room in play order.
func (repo *HistoryRepository) GetMoves(ctx context.Context, roomCode string) ([]models.MoveRecord, error) {
	pgConn := repo.services.Postgres

	query := `
		SELECT room_code, player_id, nickname, color, token_id, from_position, to_position, captured, timestamp
		FROM moves
		WHERE room_code = $1
		ORDER BY id;
	`

	records := []models.MoveRecord{}
	if err := pgConn.SelectContext(ctx, &records, query, roomCode); err != nil {
		return nil, fmt.Errorf("error loading move history: %w", err)
	}

	return records, nil
}

// RecordWin increments the win counter for a color.
func (repo *HistoryRepository) RecordWin(ctx context.Context, color models.Color) error {
	redisConn := repo.services.Redis

	if err := redisConn.HIncrBy(ctx, statsKey, string(color), 1).Err(); err != nil {
		return fmt.Errorf("error updating win stats: %w", err)
	}

	return nil
}

// GetStats returns the win counters for all colors.
func (repo *HistoryRepository) GetStats(ctx context.Context) (models.StatsResponse, error) {
	redisConn := repo.services.Redis

	counters, err := redisConn.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("error loading win stats: %w", err)
	}

	stats := models.StatsResponse{Wins: make(map[models.Color]int64)}
	for _, color := range models.ColorRotation {
		stats.Wins[color] = 0
	}
	for color, value := range counters {
		var count int64
		if _, err := fmt.Sscanf(value, "%d", &count); err != nil {
			return models.StatsResponse{}, fmt.Errorf("error parsing win counter: %w", err)
		}
		stats.Wins[models.Color(color)] = count
	}

	return stats, nil
}
