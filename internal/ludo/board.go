// Package ludo implements the rules of the board game: move legality,
// capture and blocking, turn advancement, win detection and the bot move
// picker. All operations are pure functions over roster/room snapshots.
package ludo

import "github.com/lk16/ludo/api/internal/models"

const (
	// BoardSize is the number of squares on the shared circular track.
	BoardSize = 52

	// HomeColumnSize counts the 5 travelable home squares plus the finish.
	HomeColumnSize = 6

	// HomeColumnStart is the position encoding of the first home-column square.
	HomeColumnStart = 52

	// homeEntryOffset is the distance from a color's start square to the last
	// track square of its lap.
	homeEntryOffset = 50
)

// startSquares maps each color to the track square its tokens enter on a six.
// Colors sit 13 squares apart, in rotation order.
var startSquares = map[models.Color]int{
	models.ColorRed:    0,
	models.ColorGreen:  13,
	models.ColorYellow: 26,
	models.ColorBlue:   39,
}

// safeZones are the track squares where tokens cannot be captured: the four
// start squares and the four star squares.
var safeZones = map[int]struct{}{
	0: {}, 8: {}, 13: {}, 21: {}, 26: {}, 34: {}, 39: {}, 47: {},
}

// StartSquare returns the track square where a color's tokens enter play.
func StartSquare(color models.Color) int {
	return startSquares[color]
}

// HomeEntrySquare returns the last track square of a color's lap. One step
// past it the token diverts into its private home column.
func HomeEntrySquare(color models.Color) int {
	return (startSquares[color] + homeEntryOffset) % BoardSize
}

// IsSafeZone reports whether a track square is immune to captures.
func IsSafeZone(square int) bool {
	_, ok := safeZones[square]
	return ok
}
