package models

import (
	"time"
)

// BoardSize is the winning square of the linear track
const BoardSize = 100

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusSetup indicates a game is still being configured
	GameStatusSetup GameStatus = "setup"

	// GameStatusPlaying indicates a game is in progress
	GameStatusPlaying GameStatus = "playing"

	// GameStatusFinished indicates a player has reached the winning square
	GameStatusFinished GameStatus = "finished"
)

// IsSetup returns true if the game is still being configured
func (s GameStatus) IsSetup() bool {
	return s == GameStatusSetup
}

// IsPlaying returns true if the game is in progress
func (s GameStatus) IsPlaying() bool {
	return s == GameStatusPlaying
}

// IsFinished returns true if the game has a winner
func (s GameStatus) IsFinished() bool {
	return s == GameStatusFinished
}

// Difficulty controls how the CPU opponent paces its moves
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Snake moves a player from Start back down to End
type Snake struct {
	Start int
	End   int
}

// Ladder moves a player from Start up to End
type Ladder struct {
	Start int
	End   int
}

// GameState is a snapshot of a game after a turn.
// Turn operations return a new GameState and leave the previous one untouched.
type GameState struct {
	// ID is the unique identifier for the game
	ID string

	// Players in turn order
	Players []Player

	// CurrentPlayerIndex points at the player whose turn it is
	CurrentPlayerIndex int

	// DiceValue is the last value rolled
	DiceValue int

	// Status is the current state of the game
	Status GameStatus

	// WinnerID is the ID of the winning player, empty until the game is finished
	WinnerID string

	// BoardSize is the winning square
	BoardSize int

	// Snakes and Ladders placed on the board
	Snakes  []Snake
	Ladders []Ladder

	// TotalRolls counts every roll taken in the game
	TotalRolls int

	// DiceMin and DiceMax bound each roll
	DiceMin int
	DiceMax int

	// SnakeCount and LadderCount are the counts requested at setup
	SnakeCount  int
	LadderCount int

	// Turn is the number of turns resolved so far
	Turn int

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the last turn was resolved
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is
func (g *GameState) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return &g.Players[g.CurrentPlayerIndex]
}

// Winner returns the winning player from the player list, or nil
func (g *GameState) Winner() *Player {
	if g.WinnerID == "" {
		return nil
	}
	for i := range g.Players {
		if g.Players[i].ID == g.WinnerID {
			return &g.Players[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the game state
func (g *GameState) Clone() *GameState {
	clone := *g
	clone.Players = append([]Player(nil), g.Players...)
	clone.Snakes = append([]Snake(nil), g.Snakes...)
	clone.Ladders = append([]Ladder(nil), g.Ladders...)
	return &clone
}
