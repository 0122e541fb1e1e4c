package models

import (
	"time"

	"github.com/google/uuid"
)

// GameState is the lifecycle state of a room.
type GameState string

const (
	GameWaiting  GameState = "waiting"
	GamePlaying  GameState = "playing"
	GameFinished GameState = "finished"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Room is the aggregate all engine operations act on. It is passed and
// returned by value: mutations replace the whole snapshot, never patch it.
type Room struct {
	Code               string    `json:"code"`
	Players            []Player  `json:"players"`
	GameState          GameState `json:"gameState"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	DiceValue          int       `json:"diceValue"`
	HasRolledDice      bool      `json:"hasRolledDice"`
	ConsecutiveSixes   int       `json:"consecutiveSixes"`
	WinnerID           uuid.UUID `json:"winnerId"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewRoom creates an empty waiting room.
func NewRoom(code string) Room {
	return Room{
		Code:      code,
		Players:   []Player{},
		GameState: GameWaiting,
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a deep copy of the room.
func (r Room) Clone() Room {
	r.Players = ClonePlayers(r.Players)
	return r
}

// CurrentPlayer returns the player whose turn it is.
func (r Room) CurrentPlayer() (Player, bool) {
	if r.GameState != GamePlaying {
		return Player{}, false
	}
	if r.CurrentPlayerIndex < 0 || r.CurrentPlayerIndex >= len(r.Players) {
		return Player{}, false
	}
	return r.Players[r.CurrentPlayerIndex], true
}

// FindPlayer returns the player with the given id and its turn index.
func (r Room) FindPlayer(id uuid.UUID) (Player, int, bool) {
	for i, p := range r.Players {
		if p.ID == id {
			return p, i, true
		}
	}
	return Player{}, -1, false
}

// MoveRecord is one entry of the append-only move history. It is written
// after each applied move and never read back by the engine.
type MoveRecord struct {
	RoomCode     string    `json:"room_code"     db:"room_code"`
	PlayerID     uuid.UUID `json:"player_id"     db:"player_id"`
	Nickname     string    `json:"nickname"      db:"nickname"`
	Color        Color     `json:"color"         db:"color"`
	TokenID      int       `json:"token_id"      db:"token_id"`
	FromPosition int       `json:"from_position" db:"from_position"`
	ToPosition   int       `json:"to_position"   db:"to_position"`
	Captured     bool      `json:"captured"      db:"captured"`
	Timestamp    time.Time `json:"timestamp"     db:"timestamp"`
}
