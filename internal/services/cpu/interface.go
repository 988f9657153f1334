package cpu

import (
	"context"

	"github.com/KirkDiggler/snakes/internal/models"
)

// Service produces rolls for CPU controlled players
type Service interface {
	// RequestMove waits a difficulty scaled delay and then rolls for the player
	RequestMove(ctx context.Context, input *RequestMoveInput) (*RequestMoveOutput, error)

	// ShouldPlayAggressively reports whether the player is close enough to the
	// winning square for the difficulty
	ShouldPlayAggressively(player models.Player, difficulty models.Difficulty) bool
}
