package rules

import "github.com/KirkDiggler/snakes/internal/models"

// CheckWinCondition reports whether player stands on the winning square
func CheckWinCondition(player models.Player) bool {
	return player.Position == models.BoardSize
}

// NextPlayerIndex returns the index of the player after currentIndex in
// round-robin order. Inactive players are not skipped. players must not be
// empty.
func NextPlayerIndex(currentIndex int, players []models.Player) int {
	return (currentIndex + 1) % len(players)
}

// AverageDiceValue returns the mean roll of player, or 0 before the first roll
func AverageDiceValue(player models.Player) float64 {
	if player.Stats.TotalRolls == 0 {
		return 0
	}
	return float64(player.Stats.TotalDiceValue) / float64(player.Stats.TotalRolls)
}
