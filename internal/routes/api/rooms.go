package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/ludo/api/internal/ludo"
	"github.com/lk16/ludo/api/internal/models"
	"github.com/lk16/ludo/api/internal/repository"
	"github.com/lk16/ludo/api/internal/services"
	"github.com/lk16/ludo/api/internal/session"
)

func newSession(c *fiber.Ctx) *session.Session {
	svc := c.Locals("services").(*services.Services) //nolint: errcheck

	return session.New(
		repository.NewRoomRepositoryFromServices(svc),
		repository.NewHistoryRepositoryFromServices(svc),
	)
}

// errorResponse maps session/engine failures onto HTTP statuses. Rule
// rejections are client errors carrying their code verbatim.
func errorResponse(c *fiber.Ctx, err error) error {
	var reject ludo.RejectCode
	if errors.As(err, &reject) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": string(reject),
		})
	}
	if errors.Is(err, repository.ErrRoomNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Room not found",
		})
	}
	if errors.Is(err, repository.ErrRoomBusy) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Room is busy",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// CreateRoom handles room creation.
func CreateRoom(c *fiber.Ctx) error {
	var payload models.CreateRoomRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	room, player, err := newSession(c).CreateRoom(c.Context(), payload.Nickname)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.JoinRoomResponse{
		Room:     room,
		PlayerID: player.ID,
	})
}

// JoinRoom handles joining an existing room.
func JoinRoom(c *fiber.Ctx) error {
	var payload models.JoinRoomRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	room, player, err := newSession(c).JoinRoom(c.Context(), c.Params("code"), payload.Nickname)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.JoinRoomResponse{
		Room:     room,
		PlayerID: player.ID,
	})
}

// AddBot handles adding a computer player to a room.
func AddBot(c *fiber.Ctx) error {
	room, _, err := newSession(c).AddBot(c.Context(), c.Params("code"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(room)
}

// StartGame handles the transition from waiting to playing.
func StartGame(c *fiber.Ctx) error {
	var payload models.PlayerActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := newSession(c).StartGame(c.Context(), c.Params("code"), payload.PlayerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// RollDice handles a dice roll by the current player.
func RollDice(c *fiber.Ctx) error {
	var payload models.PlayerActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := newSession(c).RollDice(c.Context(), c.Params("code"), payload.PlayerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// MoveToken handles moving a token with the current roll.
func MoveToken(c *fiber.Ctx) error {
	var payload models.MoveTokenRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := newSession(c).MoveToken(c.Context(), c.Params("code"), payload.PlayerID, payload.TokenID, payload.DiceValue)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// EndTurn handles a voluntary or forced end of turn.
func EndTurn(c *fiber.Ctx) error {
	var payload models.PlayerActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := newSession(c).EndTurn(c.Context(), c.Params("code"), payload.PlayerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// LeaveRoom handles a player leaving a room.
func LeaveRoom(c *fiber.Ctx) error {
	var payload models.PlayerActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := newSession(c).LeaveRoom(c.Context(), c.Params("code"), payload.PlayerID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GetRoom returns the current room snapshot.
func GetRoom(c *fiber.Ctx) error {
	room, err := newSession(c).State(c.Context(), c.Params("code"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(room)
}

// GetHistory returns the move history of a room.
func GetHistory(c *fiber.Ctx) error {
	repo := repository.NewHistoryRepository(c)

	records, err := repo.GetMoves(c.Context(), c.Params("code"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(records)
}
