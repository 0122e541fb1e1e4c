package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Color identifies a player's side and fixes its entry square and home column.
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
)

// ColorRotation is the canonical color assignment order by join order.
var ColorRotation = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue}

const (
	// TokensPerPlayer is the number of tokens each player owns.
	TokensPerPlayer = 4

	// BasePosition encodes a token that has not entered the track yet.
	BasePosition = -1

	// FinishedPosition encodes a token that reached the center.
	FinishedPosition = 57
)

// Token is one of a player's four pieces. Its location is fully encoded in
// Position: -1 base, 0-51 shared track, 52-56 home column, 57 finished.
type Token struct {
	ID         int  `json:"id"`
	Position   int  `json:"position"`
	IsHome     bool `json:"isHome"`
	IsFinished bool `json:"isFinished"`
}

// NewToken creates a token in its base.
func NewToken(id int) Token {
	return Token{
		ID:       id,
		Position: BasePosition,
		IsHome:   true,
	}
}

// MovedTo returns a copy of the token placed at position, with the derived
// flags recomputed.
func (t Token) MovedTo(position int) Token {
	t.Position = position
	t.IsHome = position == BasePosition
	t.IsFinished = position == FinishedPosition
	return t
}

// OnTrack reports whether the token is on the shared 52-square track.
func (t Token) OnTrack() bool {
	return t.Position >= 0 && t.Position < 52
}

// InHomeColumn reports whether the token is inside its private home column.
func (t Token) InHomeColumn() bool {
	return t.Position >= 52 && t.Position < FinishedPosition
}

// Validate checks the token's internal consistency.
func (t Token) Validate() error {
	if t.ID < 0 || t.ID >= TokensPerPlayer {
		return fmt.Errorf("token id out of range: %d", t.ID)
	}
	if t.Position < BasePosition || t.Position > FinishedPosition {
		return fmt.Errorf("token position out of range: %d", t.Position)
	}
	if t.IsHome != (t.Position == BasePosition) {
		return fmt.Errorf("isHome flag inconsistent with position %d", t.Position)
	}
	if t.IsFinished != (t.Position == FinishedPosition) {
		return fmt.Errorf("isFinished flag inconsistent with position %d", t.Position)
	}
	return nil
}

// Player is a participant in a room. Turn order is the player's index in
// Room.Players.
type Player struct {
	ID       uuid.UUID `json:"id"`
	Nickname string    `json:"nickname"`
	Color    Color     `json:"color"`
	Tokens   []Token   `json:"tokens"`
	IsBot    bool      `json:"isBot"`
}

// NewPlayer creates a player without tokens. Tokens are dealt when the game
// starts.
func NewPlayer(nickname string, color Color, isBot bool) Player {
	return Player{
		ID:       uuid.New(),
		Nickname: nickname,
		Color:    color,
		IsBot:    isBot,
	}
}

// DealTokens returns a copy of the player with four fresh tokens in base.
func (p Player) DealTokens() Player {
	tokens := make([]Token, TokensPerPlayer)
	for i := range tokens {
		tokens[i] = NewToken(i)
	}
	p.Tokens = tokens
	return p
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	tokens := make([]Token, len(p.Tokens))
	copy(tokens, p.Tokens)
	p.Tokens = tokens
	return p
}

// Token returns the token with the given id, if it exists.
func (p Player) Token(id int) (Token, bool) {
	for _, t := range p.Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

// ClonePlayers deep-copies a roster snapshot.
func ClonePlayers(players []Player) []Player {
	cloned := make([]Player, len(players))
	for i, p := range players {
		cloned[i] = p.Clone()
	}
	return cloned
}
