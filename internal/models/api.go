package models

import (
	"errors"

	"github.com/google/uuid"
)

// CreateRoomRequest represents the payload for creating a room.
type CreateRoomRequest struct {
	Nickname string `json:"nickname"`
}

// Validate validates the create room request.
func (r CreateRoomRequest) Validate() error {
	if r.Nickname == "" {
		return errors.New("nickname must not be empty")
	}
	return nil
}

// JoinRoomRequest represents the payload for joining a room.
type JoinRoomRequest struct {
	Nickname string `json:"nickname"`
}

// Validate validates the join room request.
func (r JoinRoomRequest) Validate() error {
	if r.Nickname == "" {
		return errors.New("nickname must not be empty")
	}
	return nil
}

// PlayerActionRequest represents a start-game, roll-dice or end-turn request.
type PlayerActionRequest struct {
	PlayerID uuid.UUID `json:"playerId"`
}

// Validate validates the player action request.
func (r PlayerActionRequest) Validate() error {
	if r.PlayerID == uuid.Nil {
		return errors.New("playerId must not be empty")
	}
	return nil
}

// MoveTokenRequest represents the payload for moving a token. DiceValue
// echoes the roll the client acts on, so acting on a stale roll is rejected.
type MoveTokenRequest struct {
	PlayerID  uuid.UUID `json:"playerId"`
	TokenID   int       `json:"tokenId"`
	DiceValue int       `json:"diceValue"`
}

// Validate validates the move token request.
func (r MoveTokenRequest) Validate() error {
	if r.PlayerID == uuid.Nil {
		return errors.New("playerId must not be empty")
	}
	if r.TokenID < 0 || r.TokenID >= TokensPerPlayer {
		return errors.New("tokenId out of range")
	}
	if r.DiceValue < 1 || r.DiceValue > 6 {
		return errors.New("diceValue out of range")
	}
	return nil
}

// JoinRoomResponse represents the response after creating or joining a room.
type JoinRoomResponse struct {
	Room     Room      `json:"room"`
	PlayerID uuid.UUID `json:"playerId"`
}

// StatsResponse represents per-color win counters.
type StatsResponse struct {
	Wins map[Color]int64 `json:"wins"`
}
