package models

// PlayerRecord holds a player's results across every game they have finished
type PlayerRecord struct {
	// Name is the display name the record is keyed by
	Name string

	// GamesPlayed is the number of finished games the player took part in
	GamesPlayed int

	// Wins is the number of games the player won
	Wins int

	// TotalRolls is the sum of rolls over all games
	TotalRolls int

	// SnakeBites is the sum of snake bites over all games
	SnakeBites int

	// LadderClimbs is the sum of ladder climbs over all games
	LadderClimbs int
}

// Leaderboard represents players ranked by wins
type Leaderboard struct {
	// Records are ordered from most to fewest wins
	Records []*PlayerRecord
}
