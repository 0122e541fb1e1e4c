package ludo

import "github.com/lk16/ludo/api/internal/models"

// Bot policy: a single-ply greedy evaluator over the valid moves. Each
// candidate gets a score; the highest one wins, ties break on the first
// candidate found so the choice is deterministic for a given snapshot.

const (
	scoreLeaveBase   = 50
	scoreCapture     = 100
	scoreFinish      = 200
	scoreSafeZone    = 10
	scoreHomeColumn  = 30
	scorePerHomeStep = 5
)

// PickMove selects the token the bot should move with the given dice value.
// ok is false when no legal move exists and the bot must end its turn.
func PickMove(players []models.Player, p models.Player, dice int) (int, bool) {
	candidates := ValidMoves(players, p, dice)

	if len(candidates) == 0 {
		return 0, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	best := candidates[0]
	bestScore := -1

	for _, tokenID := range candidates {
		score := scoreMove(players, p, tokenID, dice)
		if score > bestScore {
			best, bestScore = tokenID, score
		}
	}

	return best, true
}

func scoreMove(players []models.Player, p models.Player, tokenID, dice int) int {
	token, _ := p.Token(tokenID)
	dest, _ := TargetFor(p.Color, token.Position, dice)

	score := 0

	if token.IsHome {
		score += scoreLeaveBase
	}

	if dest < BoardSize && !IsSafeZone(dest) && wouldCapture(players, p, dest) {
		score += scoreCapture
	}

	if dest == models.FinishedPosition {
		score += scoreFinish
	}

	switch {
	case token.InHomeColumn():
		score += scoreHomeColumn + (token.Position-HomeColumnStart)*scorePerHomeStep
	case token.OnTrack():
		score += trackDistance(StartSquare(p.Color), token.Position) / 2
	}

	if dest < BoardSize && IsSafeZone(dest) {
		score += scoreSafeZone
	}

	return score
}

// wouldCapture mirrors the engine's capture rule: exactly one opponent token
// on the square, blocks are immune.
func wouldCapture(players []models.Player, mover models.Player, square int) bool {
	occupants := 0
	for _, p := range players {
		if p.ID == mover.ID {
			continue
		}
		for _, t := range p.Tokens {
			if t.Position == square {
				occupants++
			}
		}
	}
	return occupants == 1
}
