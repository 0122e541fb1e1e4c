package session

import (
	"context"

	"github.com/lk16/ludo/api/internal/models"
)

// RoomStore is the room persistence boundary. The Redis-backed
// repository.RoomRepository implements it in production; tests use an
// in-memory double.
type RoomStore interface {
	Get(ctx context.Context, code string) (models.Room, error)
	Save(ctx context.Context, room models.Room) error
	Delete(ctx context.Context, code string) error

	// Acquire takes the per-room mutation lock. Every state-changing action
	// runs its read-validate-write cycle while holding it.
	Acquire(ctx context.Context, code string) (func(), error)
}

// HistoryRecorder receives the append-only move history and win counters.
// It is write-only from the session's point of view.
type HistoryRecorder interface {
	AppendMove(ctx context.Context, record models.MoveRecord) error
	RecordWin(ctx context.Context, color models.Color) error
}
