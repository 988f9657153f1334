package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/snakes/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/snakes/internal/models"
)

// Repository defines the interface for game snapshot persistence
type Repository interface {
	// SaveGame persists the latest snapshot and appends it to the game's history
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves the latest snapshot of a game
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error)

	// GetSnapshot retrieves the snapshot saved after a given turn
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.GameState, error)

	// ListSnapshots retrieves every saved snapshot of a game in save order
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)

	// DeleteGame removes a game and its history
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games still in play
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
