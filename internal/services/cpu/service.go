package cpu

import (
	"context"
	"time"

	"github.com/KirkDiggler/snakes/internal/common/clock"
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/models"
)

// DefaultDelay is used for difficulties without a delay range
const DefaultDelay = 500 * time.Millisecond

// delayRange bounds the thinking delay in milliseconds
type delayRange struct {
	min int
	max int
}

var delayRanges = map[models.Difficulty]delayRange{
	models.DifficultyEasy:   {min: 1000, max: 2000},
	models.DifficultyMedium: {min: 500, max: 1000},
	models.DifficultyHard:   {min: 200, max: 500},
}

// aggressiveDistance is how far from the winning square a CPU starts playing aggressively
var aggressiveDistance = map[models.Difficulty]int{
	models.DifficultyEasy:   20,
	models.DifficultyMedium: 30,
	models.DifficultyHard:   40,
}

// service implements the Service interface
type service struct {
	diceRoller dice.Roller
	clock      clock.Clock
}

// New creates a new CPU service
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

	return &service{
		diceRoller: cfg.DiceRoller,
		clock:      cfg.Clock,
	}, nil
}

// DelayFor picks a thinking delay for the difficulty
func (s *service) DelayFor(difficulty models.Difficulty) time.Duration {
	r, ok := delayRanges[difficulty]
	if !ok {
		return DefaultDelay
	}
	return time.Duration(s.diceRoller.Roll(r.min, r.max)) * time.Millisecond
}

// RequestMove blocks for the difficulty's delay and then rolls. The board is
// not consulted; the CPU rolls like any other player.
func (s *service) RequestMove(ctx context.Context, input *RequestMoveInput) (*RequestMoveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	delay := s.DelayFor(input.Difficulty)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.clock.After(delay):
	}

	lo, hi := input.DiceMin, input.DiceMax
	if lo == 0 && hi == 0 {
		lo, hi = dice.DefaultMin, dice.DefaultMax
	}

	return &RequestMoveOutput{
		DiceValue:  s.diceRoller.Roll(lo, hi),
		Delay:      delay,
		Aggressive: s.ShouldPlayAggressively(input.Player, input.Difficulty),
	}, nil
}

// ShouldPlayAggressively reports whether the player is within the difficulty's
// distance of the winning square. Unknown difficulties never play aggressively.
func (s *service) ShouldPlayAggressively(player models.Player, difficulty models.Difficulty) bool {
	threshold, ok := aggressiveDistance[difficulty]
	if !ok {
		return false
	}
	return models.BoardSize-player.Position <= threshold
}
