package ludo

import (
	"slices"

	"github.com/google/uuid"
	"github.com/lk16/ludo/api/internal/models"
)

// Move describes an applied move, for history and broadcast.
type Move struct {
	PlayerID uuid.UUID `json:"playerId"`
	TokenID  int       `json:"tokenId"`
	From     int       `json:"fromPosition"`
	To       int       `json:"toPosition"`
	Captured bool      `json:"captured"`
}

// TargetFor computes the position a token reaches from its current position
// with the given number of steps. ok is false when no destination exists:
// leaving base without a six, or overshooting the finish.
func TargetFor(color models.Color, position, steps int) (int, bool) {
	if position == models.BasePosition {
		if steps != 6 {
			return 0, false
		}
		return StartSquare(color), true
	}

	if position >= HomeColumnStart {
		offset := position - HomeColumnStart + steps
		if offset > HomeColumnSize-1 {
			return 0, false
		}
		return HomeColumnStart + offset, true
	}

	distance := trackDistance(StartSquare(color), position)
	entryDistance := trackDistance(StartSquare(color), HomeEntrySquare(color))

	if distance+steps > entryDistance {
		offset := distance + steps - entryDistance - 1
		if offset > HomeColumnSize-1 {
			return 0, false
		}
		return HomeColumnStart + offset, true
	}

	return (position + steps) % BoardSize, true
}

// BlockAt reports whether a track square carries a block: two or more tokens
// of a single player other than exclude. Blocks only exist on the main track.
func BlockAt(players []models.Player, square int, exclude uuid.UUID) (uuid.UUID, bool) {
	if square < 0 || square >= BoardSize {
		return uuid.Nil, false
	}
	for _, p := range players {
		if p.ID == exclude {
			continue
		}
		count := 0
		for _, t := range p.Tokens {
			if t.Position == square {
				count++
			}
		}
		if count >= 2 {
			return p.ID, true
		}
	}
	return uuid.Nil, false
}

// PathBlocked reports whether an opponent block sits on any track square the
// token crosses, starting one step after from up to and including the last
// track square of the move. Squares inside the home column are not checked:
// blocks cannot exist there.
func PathBlocked(players []models.Player, mover models.Player, from, steps int) bool {
	if from < 0 || from >= BoardSize {
		return false
	}

	distance := trackDistance(StartSquare(mover.Color), from)
	entryDistance := trackDistance(StartSquare(mover.Color), HomeEntrySquare(mover.Color))

	trackSteps := steps
	if remaining := entryDistance - distance; remaining < trackSteps {
		trackSteps = remaining
	}

	for i := 1; i <= trackSteps; i++ {
		if _, blocked := BlockAt(players, (from+i)%BoardSize, mover.ID); blocked {
			return true
		}
	}
	return false
}

// JumpsOwnToken reports whether moving the given token to a home-column
// destination would leap over another of the player's own tokens. Own tokens
// may never be jumped inside the column.
func JumpsOwnToken(p models.Player, tokenID, from, to int) bool {
	low := HomeColumnStart
	if from >= HomeColumnStart {
		low = from + 1
	}
	for square := low; square < to; square++ {
		for _, t := range p.Tokens {
			if t.ID != tokenID && t.Position == square {
				return true
			}
		}
	}
	return false
}

// ValidMoves returns the ids of the player's tokens that may legally move
// with the given dice value. An empty result means a forced end of turn.
func ValidMoves(players []models.Player, p models.Player, dice int) []int {
	var moves []int

	for _, t := range p.Tokens {
		if t.IsFinished {
			continue
		}

		if t.IsHome {
			// Leaving base needs a six and an entry square free of opponent
			// blocks. An own block on the entry square is fine.
			if dice != 6 {
				continue
			}
			if _, blocked := BlockAt(players, StartSquare(p.Color), p.ID); blocked {
				continue
			}
			moves = append(moves, t.ID)
			continue
		}

		dest, ok := TargetFor(p.Color, t.Position, dice)
		if !ok {
			continue
		}
		if t.OnTrack() && PathBlocked(players, p, t.Position, dice) {
			continue
		}
		if dest < BoardSize {
			if _, blocked := BlockAt(players, dest, p.ID); blocked {
				continue
			}
		} else if JumpsOwnToken(p, t.ID, t.Position, dest) {
			continue
		}

		moves = append(moves, t.ID)
	}

	return moves
}

// ApplyMove moves a token of the given player and applies captures. It
// returns a new roster snapshot: the input is never mutated. ErrIllegalMove
// is returned when the token is not among the currently valid moves.
func ApplyMove(players []models.Player, playerID uuid.UUID, tokenID, dice int) ([]models.Player, Move, error) {
	playerIndex := slices.IndexFunc(players, func(p models.Player) bool {
		return p.ID == playerID
	})
	if playerIndex == -1 {
		return nil, Move{}, ErrUnknownPlayer
	}
	mover := players[playerIndex]

	token, ok := mover.Token(tokenID)
	if !ok {
		return nil, Move{}, ErrInvalidToken
	}

	if !slices.Contains(ValidMoves(players, mover, dice), tokenID) {
		return nil, Move{}, ErrIllegalMove
	}

	dest, ok := TargetFor(mover.Color, token.Position, dice)
	if !ok {
		return nil, Move{}, ErrIllegalMove
	}

	updated := models.ClonePlayers(players)

	captured := false
	if dest < BoardSize && !IsSafeZone(dest) {
		captured = captureAt(updated, playerIndex, dest)
	}

	for i, t := range updated[playerIndex].Tokens {
		if t.ID == tokenID {
			updated[playerIndex].Tokens[i] = t.MovedTo(dest)
		}
	}

	move := Move{
		PlayerID: playerID,
		TokenID:  tokenID,
		From:     token.Position,
		To:       dest,
		Captured: captured,
	}
	return updated, move, nil
}

// captureAt sends the single opponent token on the square back to base.
// Two or more tokens on the square form a block or a contested square and
// are immune.
func captureAt(players []models.Player, moverIndex, square int) bool {
	var occupantPlayer, occupantToken int
	occupants := 0

	for pi, p := range players {
		if pi == moverIndex {
			continue
		}
		for ti, t := range p.Tokens {
			if t.Position == square {
				occupants++
				occupantPlayer, occupantToken = pi, ti
			}
		}
	}

	if occupants != 1 {
		return false
	}

	token := players[occupantPlayer].Tokens[occupantToken]
	players[occupantPlayer].Tokens[occupantToken] = token.MovedTo(models.BasePosition)
	return true
}

// HasWon reports whether all four of the player's tokens are finished.
func HasWon(p models.Player) bool {
	if len(p.Tokens) != models.TokensPerPlayer {
		return false
	}
	for _, t := range p.Tokens {
		if !t.IsFinished {
			return false
		}
	}
	return true
}

// trackDistance is the number of forward steps from one track square to
// another on the circular track.
func trackDistance(from, to int) int {
	return ((to - from) % BoardSize + BoardSize) % BoardSize
}
