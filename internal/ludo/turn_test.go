package ludo

import (
	"testing"

	"github.com/lk16/ludo/api/internal/models"
	"github.com/stretchr/testify/require"
)

func testRoom(players ...models.Player) models.Room {
	room := models.NewRoom("TEST42")
	room.Players = players
	room.GameState = models.GamePlaying
	return room
}

func TestStartGame(t *testing.T) {
	room := models.NewRoom("TEST42")
	room.Players = []models.Player{
		models.NewPlayer("alice", models.ColorRed, false),
		models.NewPlayer("bob", models.ColorGreen, false),
	}

	started := StartGame(room)

	require.Equal(t, models.GamePlaying, started.GameState)
	require.Equal(t, 0, started.CurrentPlayerIndex)
	for _, p := range started.Players {
		require.Len(t, p.Tokens, models.TokensPerPlayer)
		for _, token := range p.Tokens {
			require.Equal(t, models.BasePosition, token.Position)
			require.True(t, token.IsHome)
		}
	}

	// Input snapshot keeps its empty token lists
	require.Empty(t, room.Players[0].Tokens)
}

func TestApplyRoll(t *testing.T) {
	room := testRoom(testPlayer(models.ColorRed), testPlayer(models.ColorGreen))

	outcome := ApplyRoll(room, 4)
	require.False(t, outcome.Busted)
	require.Equal(t, 4, outcome.Room.DiceValue)
	require.True(t, outcome.Room.HasRolledDice)
	require.Equal(t, 0, outcome.Room.ConsecutiveSixes)

	// Input snapshot is untouched
	require.False(t, room.HasRolledDice)
}

func TestApplyRollCountsSixes(t *testing.T) {
	room := testRoom(testPlayer(models.ColorRed), testPlayer(models.ColorGreen))

	outcome := ApplyRoll(room, 6)
	require.False(t, outcome.Busted)
	require.Equal(t, 1, outcome.Room.ConsecutiveSixes)
}

func TestApplyRollTripleSixBusts(t *testing.T) {
	room := testRoom(testPlayer(models.ColorRed), testPlayer(models.ColorGreen))
	room.ConsecutiveSixes = 2

	outcome := ApplyRoll(room, 6)

	require.True(t, outcome.Busted)
	require.Equal(t, 1, outcome.Room.CurrentPlayerIndex)
	require.Equal(t, 0, outcome.Room.DiceValue)
	require.False(t, outcome.Room.HasRolledDice)
	require.Equal(t, 0, outcome.Room.ConsecutiveSixes)
}

func TestResolveMoveAdvancesTurn(t *testing.T) {
	red := testPlayer(models.ColorRed, 5)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)
	room.DiceValue = 3
	room.HasRolledDice = true

	players, move, err := ApplyMove(room.Players, red.ID, 0, 3)
	require.NoError(t, err)

	resolved := ResolveMove(room, players, move)

	require.Equal(t, 1, resolved.CurrentPlayerIndex)
	require.Equal(t, 0, resolved.DiceValue)
	require.False(t, resolved.HasRolledDice)
	require.Equal(t, 0, resolved.ConsecutiveSixes)
	require.Equal(t, 8, resolved.Players[0].Tokens[0].Position)
}

func TestResolveMoveExtraTurnOnSix(t *testing.T) {
	red := testPlayer(models.ColorRed, 5)
	green := testPlayer(models.ColorGreen)
	room := testRoom(red, green)
	room.DiceValue = 6
	room.HasRolledDice = true
	room.ConsecutiveSixes = 1

	players, move, err := ApplyMove(room.Players, red.ID, 0, 6)
	require.NoError(t, err)

	resolved := ResolveMove(room, players, move)

	// Same player keeps the turn; dice cleared to force a fresh roll
	require.Equal(t, 0, resolved.CurrentPlayerIndex)
	require.Equal(t, 0, resolved.DiceValue)
	require.False(t, resolved.HasRolledDice)
	require.Equal(t, 1, resolved.ConsecutiveSixes)
}

func TestResolveMoveWin(t *testing.T) {
	red := testPlayer(models.ColorRed,
		models.FinishedPosition, models.FinishedPosition, models.FinishedPosition, 56)
	green := testPlayer(models.ColorGreen, 20)
	room := testRoom(red, green)
	room.DiceValue = 1
	room.HasRolledDice = true

	players, move, err := ApplyMove(room.Players, red.ID, 3, 1)
	require.NoError(t, err)

	resolved := ResolveMove(room, players, move)

	require.Equal(t, models.GameFinished, resolved.GameState)
	require.Equal(t, red.ID, resolved.WinnerID)

	// No further rolls are accepted
	require.ErrorIs(t, CanRollDice(resolved, green.ID), ErrGameNotInProgress)
}

func TestPassTurn(t *testing.T) {
	room := testRoom(testPlayer(models.ColorRed), testPlayer(models.ColorGreen))
	room.CurrentPlayerIndex = 1
	room.DiceValue = 3
	room.HasRolledDice = true

	passed := PassTurn(room)

	require.Equal(t, 0, passed.CurrentPlayerIndex)
	require.Equal(t, 0, passed.DiceValue)
	require.False(t, passed.HasRolledDice)
}
