package board

import (
	"testing"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBoardIsValid(t *testing.T) {
	b := Default()

	assert.Len(t, b.Snakes, 10)
	assert.Len(t, b.Ladders, 9)

	valid, conflicts := ValidateConfiguration(b.Snakes, b.Ladders)
	assert.True(t, valid)
	assert.Empty(t, conflicts)

	for _, s := range b.Snakes {
		assert.Less(t, s.End, s.Start)
	}
	for _, l := range b.Ladders {
		assert.Greater(t, l.End, l.Start)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	snakes := DefaultSnakes()
	snakes[0].End = 1

	assert.Equal(t, 6, DefaultSnakes()[0].End)
}

func TestQueries(t *testing.T) {
	snakes := DefaultSnakes()
	ladders := DefaultLadders()

	assert.True(t, IsSnakePosition(98, snakes))
	assert.False(t, IsSnakePosition(78, snakes))
	assert.True(t, IsLadderPosition(4, ladders))
	assert.False(t, IsLadderPosition(14, ladders))

	end, ok := SnakeEndFor(98, snakes)
	assert.True(t, ok)
	assert.Equal(t, 78, end)

	_, ok = SnakeEndFor(50, snakes)
	assert.False(t, ok)

	end, ok = LadderEndFor(80, ladders)
	assert.True(t, ok)
	assert.Equal(t, 100, end)

	_, ok = LadderEndFor(2, ladders)
	assert.False(t, ok)
}

func TestEndForReturnsFirstMatch(t *testing.T) {
	snakes := []models.Snake{{Start: 40, End: 10}, {Start: 40, End: 20}}

	end, ok := SnakeEndFor(40, snakes)
	assert.True(t, ok)
	assert.Equal(t, 10, end)
}
