package game

import (
	"context"

	"github.com/KirkDiggler/snakes/internal/board"
	"github.com/KirkDiggler/snakes/internal/common/clock"
	"github.com/KirkDiggler/snakes/internal/common/uuid"
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/KirkDiggler/snakes/internal/rules"
)

// service implements the Service interface
type service struct {
	diceRoller    dice.Roller
	generator     *board.Generator
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		diceRoller:    cfg.DiceRoller,
		generator:     board.NewGenerator(cfg.DiceRoller),
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGameState builds the starting state for a list of players and a board
func (s *service) CreateGameState(ctx context.Context, input *CreateGameStateInput) (*CreateGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	output := &CreateGameStateOutput{}

	var b board.Board
	snakeCount, ladderCount := DefaultSnakeCount, DefaultLadderCount

	switch input.Board.Mode {
	case BoardModeDefault, "":
		b = board.Default()
	case BoardModeCustom:
		b = board.Board{
			Snakes:  append([]models.Snake(nil), input.Board.Snakes...),
			Ladders: append([]models.Ladder(nil), input.Board.Ladders...),
		}
		valid, conflicts := board.ValidateConfiguration(b.Snakes, b.Ladders)
		if !valid {
			b = board.Default()
			output.BoardFallback = true
			output.Conflicts = conflicts
		}
		snakeCount, ladderCount = len(input.Board.Snakes), len(input.Board.Ladders)
	case BoardModeRandom:
		snakeCount, ladderCount = input.Board.SnakeCount, input.Board.LadderCount
		random := s.generator.CreateRandomBoard(snakeCount, ladderCount)
		b = random.Board
		output.BoardFallback = random.Fallback
		output.Conflicts = random.Conflicts
	default:
		return nil, ErrUnknownBoardMode
	}

	diceMin, diceMax := input.DiceMin, input.DiceMax
	if diceMin == 0 && diceMax == 0 {
		diceMin, diceMax = dice.DefaultMin, dice.DefaultMax
	}

	players := make([]models.Player, 0, len(input.Players))
	for _, p := range input.Players {
		id := p.ID
		if id == "" {
			id = s.uuidGenerator.NewUUID()
		}

		players = append(players, models.Player{
			ID:       id,
			Name:     p.Name,
			Color:    p.Color,
			IsCPU:    p.IsCPU,
			Position: 1,
			IsWinner: false,
			IsActive: true,
			Stats:    models.PlayerStats{},
		})
	}

	now := s.clock.Now()

	output.State = &models.GameState{
		ID:                 s.uuidGenerator.NewUUID(),
		Players:            players,
		CurrentPlayerIndex: 0,
		DiceValue:          0,
		Status:             models.GameStatusPlaying,
		BoardSize:          models.BoardSize,
		Snakes:             b.Snakes,
		Ladders:            b.Ladders,
		TotalRolls:         0,
		DiceMin:            diceMin,
		DiceMax:            diceMax,
		SnakeCount:         snakeCount,
		LadderCount:        ladderCount,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return output, nil
}

// CreateDefaultGameState builds the starting state on the fixed board
func (s *service) CreateDefaultGameState(ctx context.Context, input *CreateDefaultGameStateInput) (*CreateGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return s.CreateGameState(ctx, &CreateGameStateInput{
		Players: input.Players,
		Board: BoardConfig{
			Mode: BoardModeDefault,
		},
	})
}

// CreateRandomGameState builds the starting state on a generated board
func (s *service) CreateRandomGameState(ctx context.Context, input *CreateRandomGameStateInput) (*CreateGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	snakeCount, ladderCount := input.SnakeCount, input.LadderCount
	if snakeCount == 0 && ladderCount == 0 {
		snakeCount, ladderCount = DefaultSnakeCount, DefaultLadderCount
	}

	return s.CreateGameState(ctx, &CreateGameStateInput{
		Players: input.Players,
		Board: BoardConfig{
			Mode:        BoardModeRandom,
			SnakeCount:  snakeCount,
			LadderCount: ladderCount,
		},
	})
}

// RollDice rolls a value in the requested range
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	lo, hi := input.Min, input.Max
	if lo == 0 && hi == 0 {
		lo, hi = dice.DefaultMin, dice.DefaultMax
	}

	return &RollDiceOutput{
		Value: s.diceRoller.Roll(lo, hi),
	}, nil
}

// TakeTurn applies a rolled value for the current player and returns the next
// state. The input state is left untouched.
func (s *service) TakeTurn(ctx context.Context, input *TakeTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.State == nil {
		return nil, ErrNilState
	}

	if input.State.Status.IsFinished() {
		return nil, ErrGameFinished
	}

	if input.State.CurrentPlayer() == nil {
		return nil, ErrInvalidGameState
	}

	state := input.State.Clone()
	current := state.CurrentPlayer()

	move := rules.MovePlayer(*current, input.DiceValue, state.Snakes, state.Ladders)

	moved := move.Player
	moved.Stats.TotalRolls++
	moved.Stats.TotalDiceValue += input.DiceValue
	move.Player = moved
	*current = moved

	state.DiceValue = input.DiceValue
	state.TotalRolls++
	state.Turn++
	state.UpdatedAt = s.clock.Now()

	won := rules.CheckWinCondition(moved)
	if won {
		current.IsWinner = true
		move.Player.IsWinner = true
		state.Status = models.GameStatusFinished
		state.WinnerID = current.ID
	} else {
		state.CurrentPlayerIndex = rules.NextPlayerIndex(state.CurrentPlayerIndex, state.Players)
	}

	return &TakeTurnOutput{
		State:     state,
		Move:      move,
		DiceValue: input.DiceValue,
		Won:       won,
	}, nil
}

// PlayTurn rolls in the state's dice range for the current player and applies
// the roll
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*TakeTurnOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.State == nil {
		return nil, ErrNilState
	}

	if input.State.Status.IsFinished() {
		return nil, ErrGameFinished
	}

	roll, err := s.RollDice(ctx, &RollDiceInput{
		Min: input.State.DiceMin,
		Max: input.State.DiceMax,
	})
	if err != nil {
		return nil, err
	}

	return s.TakeTurn(ctx, &TakeTurnInput{
		State:     input.State,
		DiceValue: roll.Value,
	})
}
