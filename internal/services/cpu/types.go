package cpu

import (
	"time"

	"github.com/KirkDiggler/snakes/internal/common/clock"
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/models"
)

// Config holds configuration for the CPU service
type Config struct {
	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
}

// RequestMoveInput contains parameters for a CPU move
type RequestMoveInput struct {
	// Player is the CPU player about to roll
	Player models.Player

	// Snakes and Ladders on the board
	Snakes  []models.Snake
	Ladders []models.Ladder

	// Difficulty sets the thinking delay
	Difficulty models.Difficulty

	// DiceMin and DiceMax bound the roll; zero means 1..6
	DiceMin int
	DiceMax int
}

// RequestMoveOutput contains the CPU's roll
type RequestMoveOutput struct {
	// DiceValue is the rolled value
	DiceValue int

	// Delay is how long the CPU waited before rolling
	Delay time.Duration

	// Aggressive is the advisory strategy flag for the player
	Aggressive bool
}
