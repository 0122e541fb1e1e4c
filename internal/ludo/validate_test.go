package ludo

import (
	"testing"

	"github.com/lk16/ludo/api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCanRollDice(t *testing.T) {
	red := testPlayer(models.ColorRed)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)

	require.NoError(t, CanRollDice(room, red.ID))
	require.ErrorIs(t, CanRollDice(room, green.ID), ErrNotYourTurn)

	room.HasRolledDice = true
	require.ErrorIs(t, CanRollDice(room, red.ID), ErrAlreadyRolled)

	room.GameState = models.GameWaiting
	require.ErrorIs(t, CanRollDice(room, red.ID), ErrGameNotInProgress)

	room.GameState = models.GamePlaying
	require.ErrorIs(t, CanRollDice(room, models.NewPlayer("x", models.ColorBlue, false).ID), ErrUnknownPlayer)
}

func TestCanMoveToken(t *testing.T) {
	red := testPlayer(models.ColorRed, 5)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)

	require.ErrorIs(t, CanMoveToken(room, red.ID, 0, 3), ErrMustRollFirst)

	room.DiceValue = 3
	room.HasRolledDice = true

	require.NoError(t, CanMoveToken(room, red.ID, 0, 3))
	require.ErrorIs(t, CanMoveToken(room, green.ID, 0, 3), ErrNotYourTurn)
	require.ErrorIs(t, CanMoveToken(room, red.ID, 0, 5), ErrStaleDiceValue)
	require.ErrorIs(t, CanMoveToken(room, red.ID, 7, 3), ErrInvalidToken)

	// Base tokens cannot move on a three
	require.ErrorIs(t, CanMoveToken(room, red.ID, 1, 3), ErrIllegalMove)

	room.GameState = models.GameFinished
	require.ErrorIs(t, CanMoveToken(room, red.ID, 0, 3), ErrGameNotInProgress)
}

func TestCanEndTurn(t *testing.T) {
	red := testPlayer(models.ColorRed, 5)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)

	require.ErrorIs(t, CanEndTurn(room, red.ID), ErrMustRollFirst)

	room.DiceValue = 6
	room.HasRolledDice = true

	// A six with a legal move must be played
	require.ErrorIs(t, CanEndTurn(room, red.ID), ErrMustMoveOnSix)
	require.ErrorIs(t, CanEndTurn(room, green.ID), ErrNotYourTurn)

	room.DiceValue = 3
	require.NoError(t, CanEndTurn(room, red.ID))
}

func TestCanEndTurnSixWithoutMoves(t *testing.T) {
	// Red's only unfinished token sits at home offset 3: a six overshoots,
	// and the base tokens are gone. Ending the turn is the only option.
	red := testPlayer(models.ColorRed,
		models.FinishedPosition, models.FinishedPosition, models.FinishedPosition, 55)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)
	room.DiceValue = 6
	room.HasRolledDice = true

	require.NoError(t, CanEndTurn(room, red.ID))
}

func TestCanStartGame(t *testing.T) {
	room := models.NewRoom("TEST42")
	require.ErrorIs(t, CanStartGame(room), ErrNotEnoughPlayers)

	room.Players = []models.Player{testPlayer(models.ColorRed), testPlayer(models.ColorGreen)}
	require.NoError(t, CanStartGame(room))

	room.GameState = models.GamePlaying
	require.ErrorIs(t, CanStartGame(room), ErrGameAlreadyStarted)
}

func TestCanJoinRoom(t *testing.T) {
	room := models.NewRoom("TEST42")
	require.NoError(t, CanJoinRoom(room))

	room.Players = []models.Player{
		testPlayer(models.ColorRed), testPlayer(models.ColorGreen),
		testPlayer(models.ColorYellow), testPlayer(models.ColorBlue),
	}
	require.ErrorIs(t, CanJoinRoom(room), ErrRoomFull)

	room.Players = room.Players[:2]
	room.GameState = models.GamePlaying
	require.ErrorIs(t, CanJoinRoom(room), ErrGameAlreadyStarted)
}

func TestValidatorsDoNotMutate(t *testing.T) {
	red := testPlayer(models.ColorRed, 5)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)
	room.DiceValue = 3
	room.HasRolledDice = true

	before := room.Clone()

	_ = CanRollDice(room, red.ID)
	_ = CanMoveToken(room, red.ID, 0, 3)
	_ = CanEndTurn(room, red.ID)
	_ = CanStartGame(room)
	_ = CanJoinRoom(room)

	require.Equal(t, before, room)

	// Calling twice yields identical results
	require.Equal(t, CanMoveToken(room, red.ID, 0, 3), CanMoveToken(room, red.ID, 0, 3))
}
