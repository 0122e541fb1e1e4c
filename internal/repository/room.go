package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/config"
	"github.com/lk16/ludo/api/internal/models"
	"github.com/lk16/ludo/api/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix     = "room:"
	roomLockKeyPrefix = "room_lock:"
	roomLockTTL       = 5 * time.Second
	lockRetryInterval = 50 * time.Millisecond
	lockRetryMax      = 40
)

// ErrRoomNotFound is returned when no room exists for a code.
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomBusy is returned when the per-room mutation lock cannot be acquired.
var ErrRoomBusy = errors.New("room is busy")

// RoomRepository stores live room state in Redis. Each room is one JSON
// value; a companion lock key serializes mutations so at most one action is
// in flight per room.
type RoomRepository struct {
	services *services.Services
}

// NewRoomRepository creates a new RoomRepository.
func NewRoomRepository(c *fiber.Ctx) *RoomRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &RoomRepository{
		services: services,
	}
}

func NewRoomRepositoryFromServices(services *services.Services) *RoomRepository {
	return &RoomRepository{
		services: services,
	}
}

// Get loads a room snapshot by code.
func (repo *RoomRepository) Get(ctx context.Context, code string) (models.Room, error) {
	redisConn := repo.services.Redis

	jsonData, err := redisConn.Get(ctx, roomKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("error getting room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal(jsonData, &room); err != nil {
		return models.Room{}, fmt.Errorf("error unmarshaling room: %w", err)
	}

	return room, nil
}

// Save writes a room snapshot and refreshes its TTL.
func (repo *RoomRepository) Save(ctx context.Context, room models.Room) error {
	jsonData, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("error marshaling room: %w", err)
	}

	redisConn := repo.services.Redis

	if err := redisConn.Set(ctx, roomKeyPrefix+room.Code, jsonData, config.RoomTTL).Err(); err != nil {
		return fmt.Errorf("error storing room: %w", err)
	}

	return nil
}

// Delete removes a room.
func (repo *RoomRepository) Delete(ctx context.Context, code string) error {
	redisConn := repo.services.Redis

	if err := redisConn.Del(ctx, roomKeyPrefix+code).Err(); err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	return nil
}

// Acquire takes the per-room mutation lock, retrying briefly when another
// action holds it. The returned release function must be called once the
// room has been written back.
func (repo *RoomRepository) Acquire(ctx context.Context, code string) (func(), error) {
	redisConn := repo.services.Redis
	lockKey := roomLockKeyPrefix + code

	for attempt := 0; attempt < lockRetryMax; attempt++ {
		ok, err := redisConn.SetNX(ctx, lockKey, "locked", roomLockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("error acquiring room lock: %w", err)
		}
		if ok {
			release := func() {
				redisConn.Del(context.Background(), lockKey)
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	return nil, ErrRoomBusy
}
