package ludo

// RejectCode is a typed refusal returned by the validator and engine. It is
// a plain string code so transport layers can send it to clients verbatim
// and branch on it without unwrapping.
type RejectCode string

func (c RejectCode) Error() string {
	return string(c)
}

const (
	ErrNotYourTurn        RejectCode = "NOT_YOUR_TURN"
	ErrGameNotInProgress  RejectCode = "GAME_NOT_IN_PROGRESS"
	ErrAlreadyRolled      RejectCode = "ALREADY_ROLLED"
	ErrMustRollFirst      RejectCode = "MUST_ROLL_FIRST"
	ErrStaleDiceValue     RejectCode = "STALE_DICE_VALUE"
	ErrInvalidToken       RejectCode = "INVALID_TOKEN"
	ErrIllegalMove        RejectCode = "ILLEGAL_MOVE"
	ErrMustMoveOnSix      RejectCode = "MUST_MOVE_ON_SIX"
	ErrRoomFull           RejectCode = "ROOM_FULL"
	ErrGameAlreadyStarted RejectCode = "GAME_ALREADY_STARTED"
	ErrNotEnoughPlayers   RejectCode = "NOT_ENOUGH_PLAYERS"
	ErrTooManyPlayers     RejectCode = "TOO_MANY_PLAYERS"
	ErrUnknownPlayer      RejectCode = "UNKNOWN_PLAYER"
)
