package models

// PlayerStats tracks a player's counters for a single game
type PlayerStats struct {
	// TotalRolls is the number of rolls the player has taken
	TotalRolls int

	// SnakeBites is the number of snakes the player has landed on
	SnakeBites int

	// LadderClimbs is the number of ladders the player has climbed
	LadderClimbs int

	// TotalDiceValue is the sum of every value the player has rolled
	TotalDiceValue int
}

// Player represents a participant in a game
type Player struct {
	// ID is the unique identifier of the player
	ID string

	// Name is the display name of the player
	Name string

	// Color is the token color shown by the host
	Color string

	// IsCPU indicates the player is controlled by the CPU move provider
	IsCPU bool

	// Position is the square the player is on
	Position int

	// IsWinner is set once the player reaches the winning square
	IsWinner bool

	// IsActive is reserved for elimination rules
	IsActive bool

	// Stats are the player's counters for this game
	Stats PlayerStats
}
