package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *GameState {
	return &GameState{
		ID: "game-1",
		Players: []Player{
			{ID: "p1", Name: "Alice", Position: 1},
			{ID: "p2", Name: "Bob", Position: 1},
		},
		Status:  GameStatusPlaying,
		Snakes:  []Snake{{Start: 16, End: 6}},
		Ladders: []Ladder{{Start: 1, End: 38}},
	}
}

func TestCloneIsDeep(t *testing.T) {
	state := newTestState()
	clone := state.Clone()

	clone.Players[0].Position = 50
	clone.Snakes[0].End = 2
	clone.Ladders[0].End = 99
	clone.CurrentPlayerIndex = 1

	assert.Equal(t, 1, state.Players[0].Position)
	assert.Equal(t, 6, state.Snakes[0].End)
	assert.Equal(t, 38, state.Ladders[0].End)
	assert.Equal(t, 0, state.CurrentPlayerIndex)
}

func TestCurrentPlayer(t *testing.T) {
	state := newTestState()

	require.NotNil(t, state.CurrentPlayer())
	assert.Equal(t, "Alice", state.CurrentPlayer().Name)

	state.CurrentPlayerIndex = 2
	assert.Nil(t, state.CurrentPlayer())

	state.CurrentPlayerIndex = -1
	assert.Nil(t, state.CurrentPlayer())
}

func TestWinnerResolvesByID(t *testing.T) {
	state := newTestState()
	assert.Nil(t, state.Winner())

	state.WinnerID = "p2"
	require.NotNil(t, state.Winner())
	assert.Equal(t, "Bob", state.Winner().Name)

	// each snapshot resolves the winner in its own player list
	clone := state.Clone()
	clone.Players[1].Position = BoardSize
	assert.Equal(t, BoardSize, clone.Winner().Position)
	assert.Equal(t, 1, state.Winner().Position)

	state.WinnerID = "missing"
	assert.Nil(t, state.Winner())
}

func TestGameStatusHelpers(t *testing.T) {
	assert.True(t, GameStatusSetup.IsSetup())
	assert.True(t, GameStatusPlaying.IsPlaying())
	assert.True(t, GameStatusFinished.IsFinished())
	assert.False(t, GameStatusPlaying.IsFinished())
}
