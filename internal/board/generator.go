package board

import (
	"github.com/KirkDiggler/snakes/internal/dice"
	"github.com/KirkDiggler/snakes/internal/models"
)

const (
	// maxAttempts is how many candidates are drawn for one element before it is skipped
	maxAttempts = 50

	minSnakeStart = 20
	maxSnakeStart = 95

	minLadderStart = 1
	maxLadderStart = 80

	minSpan = 5
	maxSpan = 40
)

// Generator places snakes and ladders at random
type Generator struct {
	roller dice.Roller
}

// NewGenerator creates a board generator drawing from roller
func NewGenerator(roller dice.Roller) *Generator {
	return &Generator{
		roller: roller,
	}
}

// GenerateSnakes places up to count snakes. An element that cannot be placed
// within maxAttempts draws is skipped, so fewer than count may be returned.
func (g *Generator) GenerateSnakes(count int) []models.Snake {
	snakes := make([]models.Snake, 0, count)
	used := make(map[int]struct{})

	for i := 0; i < count; i++ {
		start, end, ok := g.place(used, func() (int, int) {
			start := g.roller.Roll(minSnakeStart, maxSnakeStart)
			end := g.roller.Roll(max(1, start-maxSpan), max(1, start-minSpan))
			return start, end
		})
		if ok {
			snakes = append(snakes, models.Snake{Start: start, End: end})
		}
	}

	return snakes
}

// GenerateLadders places up to count ladders, avoiding every square used by
// existingSnakes. Like GenerateSnakes it may return fewer than count.
func (g *Generator) GenerateLadders(count int, existingSnakes []models.Snake) []models.Ladder {
	ladders := make([]models.Ladder, 0, count)
	used := make(map[int]struct{}, len(existingSnakes)*2)
	for _, s := range existingSnakes {
		used[s.Start] = struct{}{}
		used[s.End] = struct{}{}
	}

	for i := 0; i < count; i++ {
		start, end, ok := g.place(used, func() (int, int) {
			start := g.roller.Roll(minLadderStart, maxLadderStart)
			end := g.roller.Roll(min(models.BoardSize, start+minSpan), min(models.BoardSize, start+maxSpan))
			return start, end
		})
		if ok {
			ladders = append(ladders, models.Ladder{Start: start, End: end})
		}
	}

	return ladders
}

// RandomBoard is the result of CreateRandomBoard
type RandomBoard struct {
	Board

	// Fallback is true when the generated layout failed validation and the
	// default board was returned instead
	Fallback bool

	// Conflicts found in the generated layout
	Conflicts []string
}

// CreateRandomBoard generates snakes, then ladders around them, and validates
// the pair. An invalid layout is replaced by the default board.
func (g *Generator) CreateRandomBoard(snakeCount, ladderCount int) *RandomBoard {
	snakes := g.GenerateSnakes(snakeCount)
	ladders := g.GenerateLadders(ladderCount, snakes)

	valid, conflicts := ValidateConfiguration(snakes, ladders)
	if !valid {
		return &RandomBoard{
			Board:     Default(),
			Fallback:  true,
			Conflicts: conflicts,
		}
	}

	return &RandomBoard{
		Board: Board{
			Snakes:  snakes,
			Ladders: ladders,
		},
	}
}

// place draws candidates until one fits, marking its squares as used
func (g *Generator) place(used map[int]struct{}, draw func() (int, int)) (int, int, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		start, end := draw()
		if start == end {
			continue
		}
		if _, ok := used[start]; ok {
			continue
		}
		if _, ok := used[end]; ok {
			continue
		}

		used[start] = struct{}{}
		used[end] = struct{}{}
		return start, end, true
	}
	return 0, 0, false
}
