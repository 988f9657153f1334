package board

import (
	"fmt"

	"github.com/KirkDiggler/snakes/internal/models"
)

// ValidateConfiguration checks that no two elements share a start or end
// square and that no element starts and ends on the same square. Snakes are
// scanned before ladders; conflicts are returned in scan order.
func ValidateConfiguration(snakes []models.Snake, ladders []models.Ladder) (bool, []string) {
	conflicts := []string{}
	used := make(map[int]struct{})

	check := func(kind string, index, start, end int) {
		if _, ok := used[start]; ok {
			conflicts = append(conflicts, fmt.Sprintf("%s %d start position %d conflicts with another element", kind, index+1, start))
		}
		if _, ok := used[end]; ok {
			conflicts = append(conflicts, fmt.Sprintf("%s %d end position %d conflicts with another element", kind, index+1, end))
		}
		if start == end {
			conflicts = append(conflicts, fmt.Sprintf("%s %d has same start and end position: %d", kind, index+1, start))
		}
		used[start] = struct{}{}
		used[end] = struct{}{}
	}

	for i, s := range snakes {
		check("Snake", i, s.Start, s.End)
	}
	for i, l := range ladders {
		check("Ladder", i, l.Start, l.End)
	}

	return len(conflicts) == 0, conflicts
}
