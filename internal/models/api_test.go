package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateRoomRequestValidate(t *testing.T) {
	require.Error(t, CreateRoomRequest{}.Validate())
	require.NoError(t, CreateRoomRequest{Nickname: "alice"}.Validate())
}

func TestJoinRoomRequestValidate(t *testing.T) {
	require.Error(t, JoinRoomRequest{}.Validate())
	require.NoError(t, JoinRoomRequest{Nickname: "bob"}.Validate())
}

func TestPlayerActionRequestValidate(t *testing.T) {
	require.Error(t, PlayerActionRequest{}.Validate())
	require.NoError(t, PlayerActionRequest{PlayerID: uuid.New()}.Validate())
}

func TestMoveTokenRequestValidate(t *testing.T) {
	playerID := uuid.New()

	tests := []struct {
		name    string
		request MoveTokenRequest
		wantErr bool
	}{
		{"valid", MoveTokenRequest{PlayerID: playerID, TokenID: 0, DiceValue: 6}, false},
		{"missing player", MoveTokenRequest{TokenID: 0, DiceValue: 6}, true},
		{"token too large", MoveTokenRequest{PlayerID: playerID, TokenID: 4, DiceValue: 6}, true},
		{"token negative", MoveTokenRequest{PlayerID: playerID, TokenID: -1, DiceValue: 6}, true},
		{"dice zero", MoveTokenRequest{PlayerID: playerID, TokenID: 0, DiceValue: 0}, true},
		{"dice too large", MoveTokenRequest{PlayerID: playerID, TokenID: 0, DiceValue: 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRoomFindPlayer(t *testing.T) {
	room := NewRoom("TEST42")
	alice := NewPlayer("alice", ColorRed, false)
	bob := NewPlayer("bob", ColorGreen, false)
	room.Players = []Player{alice, bob}

	found, index, ok := room.FindPlayer(bob.ID)
	require.True(t, ok)
	require.Equal(t, 1, index)
	require.Equal(t, "bob", found.Nickname)

	_, _, ok = room.FindPlayer(uuid.New())
	require.False(t, ok)
}

func TestRoomCurrentPlayer(t *testing.T) {
	room := NewRoom("TEST42")
	room.Players = []Player{
		NewPlayer("alice", ColorRed, false),
		NewPlayer("bob", ColorGreen, false),
	}

	// Not playing yet
	_, ok := room.CurrentPlayer()
	require.False(t, ok)

	room.GameState = GamePlaying
	room.CurrentPlayerIndex = 1

	current, ok := room.CurrentPlayer()
	require.True(t, ok)
	require.Equal(t, "bob", current.Nickname)
}
