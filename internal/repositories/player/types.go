package player

import "github.com/KirkDiggler/snakes/internal/models"

// RecordResultInput contains one player's outcome of a finished game
type RecordResultInput struct {
	// Name is the display name the record is keyed by
	Name string

	// Won is set for the winner of the game
	Won bool

	// Stats are the player's counters for the game
	Stats models.PlayerStats
}

// GetPlayerRecordInput contains parameters for retrieving a record
type GetPlayerRecordInput struct {
	Name string
}

// GetLeaderboardInput contains parameters for retrieving the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of records; zero means all
	Limit int
}
