package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/lk16/ludo/api/internal/ludo"
	"github.com/lk16/ludo/api/internal/models"
)

const botActionTimeout = 5 * time.Second

// scheduleBotTurn fires a bot follow-up after the configured delay. The
// timer is fire-and-forget: TakeBotTurn re-validates against current state,
// so a duplicate or stale trigger is a harmless no-op.
func (s *Session) scheduleBotTurn(code string) {
	time.AfterFunc(s.botDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), botActionTimeout)
		defer cancel()

		if err := s.TakeBotTurn(ctx, code); err != nil {
			slog.Error("Bot turn failed", "room", code, "error", err)
		}
	})
}

// TakeBotTurn plays one full bot turn: roll, then either the policy's move
// or a pass. Returns nil without acting when it is not a bot's turn, which
// makes duplicate scheduled triggers safe.
func (s *Session) TakeBotTurn(ctx context.Context, code string) error {
	room, err := s.rooms.Get(ctx, code)
	if err != nil {
		return err
	}

	bot, ok := room.CurrentPlayer()
	if !ok || !bot.IsBot {
		return nil
	}

	rollResult, err := s.RollDice(ctx, code, bot.ID)
	if err != nil {
		// Another action won the race; the next trigger will catch up.
		if _, isReject := err.(ludo.RejectCode); isReject {
			return nil
		}
		return err
	}
	if rollResult.Busted {
		return nil
	}

	room = rollResult.Room
	bot, _, _ = room.FindPlayer(bot.ID)

	tokenID, hasMove := ludo.PickMove(room.Players, bot, rollResult.DiceValue)
	if !hasMove {
		_, err = s.EndTurn(ctx, code, bot.ID)
		return err
	}

	moveResult, err := s.MoveToken(ctx, code, bot.ID, tokenID, rollResult.DiceValue)
	if err != nil {
		return err
	}

	if moveResult.Room.GameState == models.GameFinished {
		slog.Info("Bot won the game", "room", code, "bot", bot.Nickname)
	}
	return nil
}
