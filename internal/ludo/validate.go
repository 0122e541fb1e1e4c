package ludo

// Validator: stateless guards run before any mutation. Each returns nil or a
// RejectCode and never modifies its input, so a duplicate or late request is
// a safe no-op.

import (
	"slices"

	"github.com/google/uuid"
	"github.com/lk16/ludo/api/internal/models"
)

// CanRollDice checks whether the player may roll now.
func CanRollDice(room models.Room, playerID uuid.UUID) error {
	if room.GameState != models.GamePlaying {
		return ErrGameNotInProgress
	}
	if err := requireCurrentPlayer(room, playerID); err != nil {
		return err
	}
	if room.HasRolledDice {
		return ErrAlreadyRolled
	}
	return nil
}

// CanMoveToken checks whether the player may move the given token with the
// submitted dice value. The dice value must match the recorded roll, so a
// client cannot replay a stale roll.
func CanMoveToken(room models.Room, playerID uuid.UUID, tokenID, dice int) error {
	if room.GameState != models.GamePlaying {
		return ErrGameNotInProgress
	}
	if err := requireCurrentPlayer(room, playerID); err != nil {
		return err
	}
	if !room.HasRolledDice {
		return ErrMustRollFirst
	}
	if dice != room.DiceValue {
		return ErrStaleDiceValue
	}

	player, _, _ := room.FindPlayer(playerID)
	if _, ok := player.Token(tokenID); !ok {
		return ErrInvalidToken
	}
	if !slices.Contains(ValidMoves(room.Players, player, dice), tokenID) {
		return ErrIllegalMove
	}
	return nil
}

// CanEndTurn checks whether the player may voluntarily end the turn. After a
// six with at least one legal move the turn must be played out.
func CanEndTurn(room models.Room, playerID uuid.UUID) error {
	if room.GameState != models.GamePlaying {
		return ErrGameNotInProgress
	}
	if err := requireCurrentPlayer(room, playerID); err != nil {
		return err
	}
	if !room.HasRolledDice {
		return ErrMustRollFirst
	}

	player, _, _ := room.FindPlayer(playerID)
	if room.DiceValue == 6 && len(ValidMoves(room.Players, player, room.DiceValue)) > 0 {
		return ErrMustMoveOnSix
	}
	return nil
}

// CanStartGame checks whether the room may transition to playing.
func CanStartGame(room models.Room) error {
	if room.GameState != models.GameWaiting {
		return ErrGameAlreadyStarted
	}
	if len(room.Players) < models.MinPlayers {
		return ErrNotEnoughPlayers
	}
	if len(room.Players) > models.MaxPlayers {
		return ErrTooManyPlayers
	}
	return nil
}

// CanJoinRoom checks whether another player fits in the room.
func CanJoinRoom(room models.Room) error {
	if room.GameState == models.GamePlaying {
		return ErrGameAlreadyStarted
	}
	if len(room.Players) >= models.MaxPlayers {
		return ErrRoomFull
	}
	return nil
}

func requireCurrentPlayer(room models.Room, playerID uuid.UUID) error {
	_, index, ok := room.FindPlayer(playerID)
	if !ok {
		return ErrUnknownPlayer
	}
	if index != room.CurrentPlayerIndex {
		return ErrNotYourTurn
	}
	return nil
}
