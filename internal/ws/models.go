package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lk16/ludo/api/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID   int `json:"id"`
	Data any `json:"data"`
}

type RoomStateRequest struct {
	RoomCode string `json:"roomCode"`
}

type RoomStateResponse struct {
	Room models.Room `json:"room"`
}

type ValidMovesRequest struct {
	RoomCode string    `json:"roomCode"`
	PlayerID uuid.UUID `json:"playerId"`
}

type ValidMovesResponse struct {
	DiceValue int   `json:"diceValue"`
	TokenIDs  []int `json:"tokenIds"`
}
