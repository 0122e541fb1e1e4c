package ludo

// Turn controller: records rolls, enforces the triple-six bust, grants the
// extra turn on a six and advances the turn index. Every function takes a
// room snapshot and returns a new one.

import "github.com/lk16/ludo/api/internal/models"

const maxConsecutiveSixes = 3

// RollOutcome is the result of recording a dice roll.
type RollOutcome struct {
	Room models.Room

	// Busted is set when this was the third consecutive six: the turn has
	// already been forfeited and advanced, no move may follow.
	Busted bool
}

// ApplyRoll records a rolled value on the room. On the third consecutive six
// the roll state is cleared and the turn advances immediately.
func ApplyRoll(room models.Room, value int) RollOutcome {
	room = room.Clone()
	room.DiceValue = value
	room.HasRolledDice = true

	if value == 6 {
		room.ConsecutiveSixes++
		if room.ConsecutiveSixes >= maxConsecutiveSixes {
			return RollOutcome{Room: advanceTurn(room), Busted: true}
		}
	}

	return RollOutcome{Room: room}
}

// ResolveMove folds an applied move back into the room: installs the updated
// roster, detects a win, and either grants the extra turn on a six or
// advances to the next player.
func ResolveMove(room models.Room, players []models.Player, move Move) models.Room {
	room = room.Clone()
	room.Players = models.ClonePlayers(players)

	if winner, _, ok := room.FindPlayer(move.PlayerID); ok && HasWon(winner) {
		room.GameState = models.GameFinished
		room.WinnerID = winner.ID
		room.DiceValue = 0
		room.HasRolledDice = false
		return room
	}

	if room.DiceValue == 6 {
		// Extra turn. Clearing the dice forces an explicit re-roll; the
		// consecutive-six count carries over into it.
		room.DiceValue = 0
		room.HasRolledDice = false
		return room
	}

	return advanceTurn(room)
}

// PassTurn resolves an explicit end of turn when no legal move exists.
func PassTurn(room models.Room) models.Room {
	return advanceTurn(room.Clone())
}

func advanceTurn(room models.Room) models.Room {
	room.CurrentPlayerIndex = (room.CurrentPlayerIndex + 1) % len(room.Players)
	room.DiceValue = 0
	room.HasRolledDice = false
	room.ConsecutiveSixes = 0
	return room
}

// StartGame deals tokens to every player and moves the room into the playing
// state. The first player in join order starts.
func StartGame(room models.Room) models.Room {
	room = room.Clone()
	for i, p := range room.Players {
		room.Players[i] = p.DealTokens()
	}
	room.GameState = models.GamePlaying
	room.CurrentPlayerIndex = 0
	room.DiceValue = 0
	room.HasRolledDice = false
	room.ConsecutiveSixes = 0
	return room
}
