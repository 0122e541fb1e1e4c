package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	token := NewToken(2)

	require.Equal(t, 2, token.ID)
	require.Equal(t, BasePosition, token.Position)
	require.True(t, token.IsHome)
	require.False(t, token.IsFinished)
	require.NoError(t, token.Validate())
}

func TestTokenMovedTo(t *testing.T) {
	token := NewToken(0)

	onTrack := token.MovedTo(13)
	require.Equal(t, 13, onTrack.Position)
	require.False(t, onTrack.IsHome)
	require.False(t, onTrack.IsFinished)
	require.True(t, onTrack.OnTrack())

	inColumn := token.MovedTo(54)
	require.True(t, inColumn.InHomeColumn())
	require.False(t, inColumn.IsFinished)

	finished := token.MovedTo(FinishedPosition)
	require.True(t, finished.IsFinished)
	require.False(t, finished.IsHome)

	backToBase := finished.MovedTo(BasePosition)
	require.True(t, backToBase.IsHome)
	require.False(t, backToBase.IsFinished)
}

func TestTokenValidate(t *testing.T) {
	tests := []struct {
		name    string
		token   Token
		wantErr bool
	}{
		{"fresh token", NewToken(0), false},
		{"finished token", NewToken(3).MovedTo(FinishedPosition), false},
		{"id out of range", Token{ID: 4, Position: BasePosition, IsHome: true}, true},
		{"position too large", Token{ID: 0, Position: 58}, true},
		{"position too small", Token{ID: 0, Position: -2}, true},
		{"isHome mismatch", Token{ID: 0, Position: 5, IsHome: true}, true},
		{"isFinished mismatch", Token{ID: 0, Position: 5, IsFinished: true}, true},
		{"flags never both set", Token{ID: 0, Position: FinishedPosition, IsHome: true, IsFinished: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPlayerDealTokens(t *testing.T) {
	player := NewPlayer("alice", ColorRed, false).DealTokens()

	require.Len(t, player.Tokens, TokensPerPlayer)
	for i, token := range player.Tokens {
		require.Equal(t, i, token.ID)
		require.True(t, token.IsHome)
	}
}

func TestPlayerClone(t *testing.T) {
	player := NewPlayer("alice", ColorRed, false).DealTokens()
	clone := player.Clone()

	clone.Tokens[0] = clone.Tokens[0].MovedTo(10)

	require.Equal(t, BasePosition, player.Tokens[0].Position)
	require.Equal(t, 10, clone.Tokens[0].Position)
}

func TestClonePlayers(t *testing.T) {
	players := []Player{
		NewPlayer("alice", ColorRed, false).DealTokens(),
		NewPlayer("bob", ColorGreen, true).DealTokens(),
	}

	cloned := ClonePlayers(players)
	cloned[1].Tokens[2] = cloned[1].Tokens[2].MovedTo(20)

	require.Equal(t, BasePosition, players[1].Tokens[2].Position)
	require.Equal(t, 20, cloned[1].Tokens[2].Position)
}
