// Package session orchestrates player actions against the game rules:
// load room, validate, mutate a snapshot, write it back. The engine itself
// is pure; everything stateful lives here or in the stores.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/ludo/api/internal/config"
	"github.com/lk16/ludo/api/internal/ludo"
	"github.com/lk16/ludo/api/internal/models"
)

const roomCodeLength = 6

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ActionResult is returned by every state-changing action.
type ActionResult struct {
	Room models.Room `json:"room"`

	// DiceValue is the rolled value, for roll actions.
	DiceValue int `json:"diceValue,omitempty"`

	// Busted is set when a third consecutive six forfeited the turn.
	Busted bool `json:"busted,omitempty"`

	// Move describes the applied move, for move actions.
	Move *ludo.Move `json:"move,omitempty"`

	// BotTurn signals that the next action belongs to a bot. The session
	// schedules the follow-up itself; the flag lets callers surface it.
	BotTurn bool `json:"botTurn,omitempty"`
}

// Session coordinates rooms, the rules engine and persistence.
type Session struct {
	rooms    RoomStore
	history  HistoryRecorder
	roll     func() int
	botDelay time.Duration
}

// New creates a session layer with a fair die and the default bot delay.
func New(rooms RoomStore, history HistoryRecorder) *Session {
	return &Session{
		rooms:    rooms,
		history:  history,
		roll:     func() int { return rand.IntN(6) + 1 },
		botDelay: config.BotMoveDelay,
	}
}

// SetDice overrides the die, used by tests for deterministic rolls.
func (s *Session) SetDice(roll func() int) {
	s.roll = roll
}

// SetBotDelay overrides the bot follow-up delay. Zero disables scheduling,
// so tests can drive bot turns explicitly via TakeBotTurn.
func (s *Session) SetBotDelay(delay time.Duration) {
	s.botDelay = delay
}

// CreateRoom creates a room with the creator as its first player.
func (s *Session) CreateRoom(ctx context.Context, nickname string) (models.Room, models.Player, error) {
	room := models.NewRoom(newRoomCode())
	player := models.NewPlayer(nickname, models.ColorRotation[0], false)
	room.Players = append(room.Players, player)

	if err := s.rooms.Save(ctx, room); err != nil {
		return models.Room{}, models.Player{}, err
	}
	return room, player, nil
}

// JoinRoom adds a player to a waiting room. Colors are assigned in rotation
// order, reusing colors freed by players that left.
func (s *Session) JoinRoom(ctx context.Context, code, nickname string) (models.Room, models.Player, error) {
	var player models.Player

	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if err := ludo.CanJoinRoom(room); err != nil {
			return models.Room{}, err
		}
		player = models.NewPlayer(nickname, nextColor(room), false)
		room.Players = append(room.Players, player)
		return room, nil
	})
	if err != nil {
		return models.Room{}, models.Player{}, err
	}
	return room, player, nil
}

// AddBot adds a computer-controlled player to a waiting room.
func (s *Session) AddBot(ctx context.Context, code string) (models.Room, models.Player, error) {
	var player models.Player

	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if err := ludo.CanJoinRoom(room); err != nil {
			return models.Room{}, err
		}
		color := nextColor(room)
		player = models.NewPlayer(fmt.Sprintf("Bot (%s)", color), color, true)
		room.Players = append(room.Players, player)
		return room, nil
	})
	if err != nil {
		return models.Room{}, models.Player{}, err
	}
	return room, player, nil
}

// LeaveRoom removes a player. An emptied room is deleted; a running game
// cannot continue without the player and is torn down as well.
func (s *Session) LeaveRoom(ctx context.Context, code string, playerID uuid.UUID) error {
	release, err := s.rooms.Acquire(ctx, code)
	if err != nil {
		return err
	}
	defer release()

	room, err := s.rooms.Get(ctx, code)
	if err != nil {
		return err
	}

	_, index, ok := room.FindPlayer(playerID)
	if !ok {
		return ludo.ErrUnknownPlayer
	}

	room = room.Clone()
	room.Players = append(room.Players[:index], room.Players[index+1:]...)

	if len(room.Players) == 0 || room.GameState == models.GamePlaying {
		return s.rooms.Delete(ctx, code)
	}

	return s.rooms.Save(ctx, room)
}

// StartGame deals tokens and begins play. Any member of the room may start.
func (s *Session) StartGame(ctx context.Context, code string, playerID uuid.UUID) (ActionResult, error) {
	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if _, _, ok := room.FindPlayer(playerID); !ok {
			return models.Room{}, ludo.ErrUnknownPlayer
		}
		if err := ludo.CanStartGame(room); err != nil {
			return models.Room{}, err
		}
		return ludo.StartGame(room), nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	result := ActionResult{Room: room}
	s.checkBotTurn(&result)
	return result, nil
}

// RollDice rolls for the current player. A third consecutive six busts the
// turn immediately.
func (s *Session) RollDice(ctx context.Context, code string, playerID uuid.UUID) (ActionResult, error) {
	var outcome ludo.RollOutcome
	var rolled int

	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if err := ludo.CanRollDice(room, playerID); err != nil {
			return models.Room{}, err
		}
		rolled = s.roll()
		outcome = ludo.ApplyRoll(room, rolled)
		return outcome.Room, nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	result := ActionResult{Room: room, DiceValue: rolled, Busted: outcome.Busted}
	if outcome.Busted {
		s.checkBotTurn(&result)
	}
	return result, nil
}

// MoveToken applies a move for the current player and records it.
func (s *Session) MoveToken(ctx context.Context, code string, playerID uuid.UUID, tokenID, dice int) (ActionResult, error) {
	var move ludo.Move
	var mover models.Player

	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if err := ludo.CanMoveToken(room, playerID, tokenID, dice); err != nil {
			return models.Room{}, err
		}

		mover, _, _ = room.FindPlayer(playerID)

		players, appliedMove, err := ludo.ApplyMove(room.Players, playerID, tokenID, dice)
		if err != nil {
			return models.Room{}, err
		}
		move = appliedMove

		return ludo.ResolveMove(room, players, move), nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	s.recordMove(ctx, room, mover, move)

	result := ActionResult{Room: room, Move: &move}
	s.checkBotTurn(&result)
	return result, nil
}

// EndTurn passes the turn when no move is possible (or wanted, after a
// non-six roll).
func (s *Session) EndTurn(ctx context.Context, code string, playerID uuid.UUID) (ActionResult, error) {
	room, err := s.mutate(ctx, code, func(room models.Room) (models.Room, error) {
		if err := ludo.CanEndTurn(room, playerID); err != nil {
			return models.Room{}, err
		}
		return ludo.PassTurn(room), nil
	})
	if err != nil {
		return ActionResult{}, err
	}

	result := ActionResult{Room: room}
	s.checkBotTurn(&result)
	return result, nil
}

// State returns the current room snapshot.
func (s *Session) State(ctx context.Context, code string) (models.Room, error) {
	return s.rooms.Get(ctx, code)
}

// mutate runs one read-validate-write cycle under the room's mutation lock.
func (s *Session) mutate(ctx context.Context, code string, apply func(models.Room) (models.Room, error)) (models.Room, error) {
	release, err := s.rooms.Acquire(ctx, code)
	if err != nil {
		return models.Room{}, err
	}
	defer release()

	room, err := s.rooms.Get(ctx, code)
	if err != nil {
		return models.Room{}, err
	}

	updated, err := apply(room)
	if err != nil {
		return models.Room{}, err
	}

	if err := s.rooms.Save(ctx, updated); err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// recordMove writes the history entry and, on a win, the stats counter.
// History is observational: failures are logged, never surfaced to players.
func (s *Session) recordMove(ctx context.Context, room models.Room, mover models.Player, move ludo.Move) {
	record := models.MoveRecord{
		RoomCode:     room.Code,
		PlayerID:     mover.ID,
		Nickname:     mover.Nickname,
		Color:        mover.Color,
		TokenID:      move.TokenID,
		FromPosition: move.From,
		ToPosition:   move.To,
		Captured:     move.Captured,
		Timestamp:    time.Now().UTC(),
	}

	if err := s.history.AppendMove(ctx, record); err != nil {
		slog.Error("Failed to append move record", "room", room.Code, "error", err)
	}

	if room.GameState == models.GameFinished && room.WinnerID == mover.ID {
		if err := s.history.RecordWin(ctx, mover.Color); err != nil {
			slog.Error("Failed to record win", "room", room.Code, "error", err)
		}
	}
}

func (s *Session) checkBotTurn(result *ActionResult) {
	player, ok := result.Room.CurrentPlayer()
	if !ok || !player.IsBot {
		return
	}

	result.BotTurn = true
	if s.botDelay > 0 {
		s.scheduleBotTurn(result.Room.Code)
	}
}

func nextColor(room models.Room) models.Color {
	taken := make(map[models.Color]bool)
	for _, p := range room.Players {
		taken[p.Color] = true
	}
	for _, color := range models.ColorRotation {
		if !taken[color] {
			return color
		}
	}
	return models.ColorRotation[len(room.Players)%len(models.ColorRotation)]
}

func newRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[rand.IntN(len(roomCodeAlphabet))]
	}
	return string(code)
}
