package rules

import (
	"testing"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCheckWinCondition(t *testing.T) {
	assert.True(t, CheckWinCondition(playerAt(100)))
	assert.False(t, CheckWinCondition(playerAt(99)))
	assert.False(t, CheckWinCondition(playerAt(1)))
}

func TestNextPlayerIndex(t *testing.T) {
	players := []models.Player{playerAt(1), playerAt(1), playerAt(1)}

	assert.Equal(t, 1, NextPlayerIndex(0, players))
	assert.Equal(t, 2, NextPlayerIndex(1, players))
	assert.Equal(t, 0, NextPlayerIndex(2, players))
	assert.Equal(t, 0, NextPlayerIndex(0, players[:1]))
}

func TestAverageDiceValue(t *testing.T) {
	player := playerAt(1)
	assert.Equal(t, 0.0, AverageDiceValue(player))

	player.Stats = models.PlayerStats{TotalRolls: 4, TotalDiceValue: 14}
	assert.InDelta(t, 3.5, AverageDiceValue(player), 0.0001)
}
