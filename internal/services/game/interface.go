package game

import "context"

// Service defines the interface for game state operations
type Service interface {
	// CreateGameState builds the starting state for a list of players and a board
	CreateGameState(ctx context.Context, input *CreateGameStateInput) (*CreateGameStateOutput, error)

	// CreateDefaultGameState builds the starting state on the fixed board
	CreateDefaultGameState(ctx context.Context, input *CreateDefaultGameStateInput) (*CreateGameStateOutput, error)

	// CreateRandomGameState builds the starting state on a generated board
	CreateRandomGameState(ctx context.Context, input *CreateRandomGameStateInput) (*CreateGameStateOutput, error)

	// RollDice rolls a value in the requested range
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// TakeTurn applies a rolled value for the current player and returns the next state
	TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error)

	// PlayTurn rolls for the current player and applies the roll
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*TakeTurnOutput, error)
}
