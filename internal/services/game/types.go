package game

import (
	"github.com/KirkDiggler/snakes/internal/common/clock"
	"github.com/KirkDiggler/snakes/internal/common/uuid"
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/KirkDiggler/snakes/internal/rules"
)

const (
	// DefaultSnakeCount is the snake count recorded on default boards and
	// requested for random boards when none is given
	DefaultSnakeCount = 8

	// DefaultLadderCount is the ladder count recorded on default boards and
	// requested for random boards when none is given
	DefaultLadderCount = 8
)

// BoardMode selects where a game's snakes and ladders come from
type BoardMode string

const (
	// BoardModeDefault uses the fixed layout
	BoardModeDefault BoardMode = "default"

	// BoardModeCustom uses caller supplied snakes and ladders
	BoardModeCustom BoardMode = "custom"

	// BoardModeRandom generates a layout
	BoardModeRandom BoardMode = "random"
)

// Config holds configuration for the game service
type Config struct {
	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayerInput describes a player joining a new game
type PlayerInput struct {
	// ID is optional; one is generated when empty
	ID string

	// Name is the display name of the player
	Name string

	// Color is the token color
	Color string

	// IsCPU marks the player as CPU controlled
	IsCPU bool
}

// BoardConfig selects the board for a new game
type BoardConfig struct {
	// Mode defaults to BoardModeDefault when empty
	Mode BoardMode

	// Snakes and Ladders are used by BoardModeCustom
	Snakes  []models.Snake
	Ladders []models.Ladder

	// SnakeCount and LadderCount are used by BoardModeRandom
	SnakeCount  int
	LadderCount int
}

// CreateGameStateInput contains parameters for creating a game state
type CreateGameStateInput struct {
	// Players in turn order
	Players []PlayerInput

	// Board configuration
	Board BoardConfig

	// DiceMin and DiceMax bound every roll; zero means 1..6
	DiceMin int
	DiceMax int
}

// CreateDefaultGameStateInput contains parameters for a game on the fixed board
type CreateDefaultGameStateInput struct {
	Players []PlayerInput
}

// CreateRandomGameStateInput contains parameters for a game on a generated board
type CreateRandomGameStateInput struct {
	Players     []PlayerInput
	SnakeCount  int
	LadderCount int
}

// CreateGameStateOutput contains the starting state
type CreateGameStateOutput struct {
	// State is the starting snapshot
	State *models.GameState

	// BoardFallback is set when the requested board was invalid and the
	// default board was used instead
	BoardFallback bool

	// Conflicts found in the requested board
	Conflicts []string
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	// Min and Max bound the roll; zero means 1..6
	Min int
	Max int
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	Value int
}

// TakeTurnInput contains parameters for applying a roll
type TakeTurnInput struct {
	// State is the snapshot the turn starts from; it is not modified
	State *models.GameState

	// DiceValue is the value rolled by the current player
	DiceValue int
}

// PlayTurnInput contains parameters for rolling and applying a turn
type PlayTurnInput struct {
	State *models.GameState
}

// TakeTurnOutput contains the result of a turn
type TakeTurnOutput struct {
	// State is the snapshot after the turn
	State *models.GameState

	// Move describes how the current player moved
	Move rules.MoveResult

	// DiceValue is the value that was applied
	DiceValue int

	// Won is set when the move ended the game
	Won bool
}
