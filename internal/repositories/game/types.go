package game

import "github.com/KirkDiggler/snakes/internal/models"

type SaveGameInput struct {
	Game *models.GameState
}

type GetGameInput struct {
	GameID string
}

type GetSnapshotInput struct {
	GameID string
	Turn   int
}

type ListSnapshotsInput struct {
	GameID string
}

type ListSnapshotsOutput struct {
	Snapshots []*models.GameState
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.GameState
}
