package ludo

import (
	"testing"

	"github.com/lk16/ludo/api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestStartSquare(t *testing.T) {
	require.Equal(t, 0, StartSquare(models.ColorRed))
	require.Equal(t, 13, StartSquare(models.ColorGreen))
	require.Equal(t, 26, StartSquare(models.ColorYellow))
	require.Equal(t, 39, StartSquare(models.ColorBlue))
}

func TestHomeEntrySquare(t *testing.T) {
	require.Equal(t, 50, HomeEntrySquare(models.ColorRed))
	require.Equal(t, 11, HomeEntrySquare(models.ColorGreen))
	require.Equal(t, 24, HomeEntrySquare(models.ColorYellow))
	require.Equal(t, 37, HomeEntrySquare(models.ColorBlue))
}

func TestIsSafeZone(t *testing.T) {
	safe := []int{0, 8, 13, 21, 26, 34, 39, 47}
	for _, square := range safe {
		require.True(t, IsSafeZone(square), "square %d should be safe", square)
	}

	for square := 0; square < BoardSize; square++ {
		isListed := false
		for _, s := range safe {
			if s == square {
				isListed = true
			}
		}
		require.Equal(t, isListed, IsSafeZone(square), "square %d", square)
	}
}

func TestEveryStartSquareIsSafe(t *testing.T) {
	for _, color := range models.ColorRotation {
		require.True(t, IsSafeZone(StartSquare(color)), "start square of %s", color)
	}
}
