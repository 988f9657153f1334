package rules

import (
	"github.com/KirkDiggler/snakes/internal/board"
	"github.com/KirkDiggler/snakes/internal/models"
)

// MoveResult is the outcome of resolving one roll
type MoveResult struct {
	// Player is a copy of the moved player with its new position and counters
	Player models.Player

	// From is the position before the roll
	From int

	// SnakeBite is set when the player landed on a snake's start
	SnakeBite bool

	// LadderClimb is set when the player landed on a ladder's start
	LadderClimb bool

	// Clamped is set when the raw move left the board and was held at an edge
	Clamped bool
}

// Clamp holds position within [1, BoardSize]
func Clamp(position int) int {
	if position < 1 {
		return 1
	}
	if position > models.BoardSize {
		return models.BoardSize
	}
	return position
}

// MovePlayer moves player by diceValue and applies at most one snake followed
// by at most one ladder. A move clamped at either edge skips both checks.
//
// Only SnakeBites and LadderClimbs are updated; roll counters belong to the
// caller.
func MovePlayer(player models.Player, diceValue int, snakes []models.Snake, ladders []models.Ladder) MoveResult {
	result := MoveResult{
		From: player.Position,
	}

	raw := player.Position + diceValue
	position := Clamp(raw)

	if position != raw {
		result.Clamped = true
	} else {
		if end, ok := board.SnakeEndFor(position, snakes); ok {
			position = end
			result.SnakeBite = true
		}

		// a snake may drop the player onto a ladder, never the reverse
		if end, ok := board.LadderEndFor(position, ladders); ok {
			position = end
			result.LadderClimb = true
		}
	}

	player.Position = position
	if result.SnakeBite {
		player.Stats.SnakeBites++
	}
	if result.LadderClimb {
		player.Stats.LadderClimbs++
	}
	result.Player = player

	return result
}
