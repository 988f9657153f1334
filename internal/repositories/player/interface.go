package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/snakes/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/snakes/internal/models"
)

// Repository defines the interface for lifetime player records
type Repository interface {
	// RecordResult adds one finished game to a player's record
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetPlayerRecord retrieves a player's record by name
	GetPlayerRecord(ctx context.Context, input *GetPlayerRecordInput) (*models.PlayerRecord, error)

	// GetLeaderboard retrieves players ranked by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
