package board

import "github.com/KirkDiggler/snakes/internal/models"

// Board is a set of snakes and ladders on the standard track
type Board struct {
	Snakes  []models.Snake
	Ladders []models.Ladder
}

var defaultSnakes = []models.Snake{
	{Start: 16, End: 6},
	{Start: 47, End: 26},
	{Start: 49, End: 11},
	{Start: 56, End: 53},
	{Start: 62, End: 19},
	{Start: 64, End: 60},
	{Start: 87, End: 24},
	{Start: 93, End: 73},
	{Start: 95, End: 75},
	{Start: 98, End: 78},
}

var defaultLadders = []models.Ladder{
	{Start: 1, End: 38},
	{Start: 4, End: 14},
	{Start: 9, End: 31},
	{Start: 21, End: 42},
	{Start: 28, End: 84},
	{Start: 36, End: 44},
	{Start: 51, End: 67},
	{Start: 71, End: 91},
	{Start: 80, End: 100},
}

// DefaultSnakes returns a copy of the fixed snake layout
func DefaultSnakes() []models.Snake {
	return append([]models.Snake(nil), defaultSnakes...)
}

// DefaultLadders returns a copy of the fixed ladder layout
func DefaultLadders() []models.Ladder {
	return append([]models.Ladder(nil), defaultLadders...)
}

// Default returns the fixed board
func Default() Board {
	return Board{
		Snakes:  DefaultSnakes(),
		Ladders: DefaultLadders(),
	}
}

// IsSnakePosition reports whether a snake starts on position
func IsSnakePosition(position int, snakes []models.Snake) bool {
	_, ok := SnakeEndFor(position, snakes)
	return ok
}

// IsLadderPosition reports whether a ladder starts on position
func IsLadderPosition(position int, ladders []models.Ladder) bool {
	_, ok := LadderEndFor(position, ladders)
	return ok
}

// SnakeEndFor returns the end of the first snake starting on position
func SnakeEndFor(position int, snakes []models.Snake) (int, bool) {
	for _, s := range snakes {
		if s.Start == position {
			return s.End, true
		}
	}
	return 0, false
}

// LadderEndFor returns the end of the first ladder starting on position
func LadderEndFor(position int, ladders []models.Ladder) (int, bool) {
	for _, l := range ladders {
		if l.Start == position {
			return l.End, true
		}
	}
	return 0, false
}
