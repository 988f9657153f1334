package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/snakes/internal/models"
	"github.com/KirkDiggler/snakes/internal/rules"
	"github.com/KirkDiggler/snakes/internal/services/messaging"
)

// renderBoard prints the snakes, ladders and players of a new game
func renderBoard(w io.Writer, state *models.GameState) {
	snakes := make([]string, 0, len(state.Snakes))
	for _, s := range state.Snakes {
		snakes = append(snakes, fmt.Sprintf("%d→%d", s.Start, s.End))
	}

	ladders := make([]string, 0, len(state.Ladders))
	for _, l := range state.Ladders {
		ladders = append(ladders, fmt.Sprintf("%d→%d", l.Start, l.End))
	}

	names := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		name := p.Name
		if p.IsCPU {
			name += " (CPU)"
		}
		names = append(names, name)
	}

	fmt.Fprintf(w, "🐍 Snakes:  %s\n", strings.Join(snakes, ", "))
	fmt.Fprintf(w, "🪜 Ladders: %s\n", strings.Join(ladders, ", "))
	fmt.Fprintf(w, "Players: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "Dice: %d-%d, first to %d wins\n\n", state.DiceMin, state.DiceMax, state.BoardSize)
}

// renderTurn prints one resolved turn
func renderTurn(w io.Writer, turn int, msg *messaging.GetTurnMessageOutput) {
	fmt.Fprintf(w, "[%3d] %s\n", turn, msg.Summary)
	if msg.Flavor != "" {
		fmt.Fprintf(w, "      %s\n", msg.Flavor)
	}
}

// renderGameOver prints the winner and every player's stats
func renderGameOver(w io.Writer, msg *messaging.GetGameOverMessageOutput, state *models.GameState) {
	fmt.Fprintf(w, "\n🏆 %s\n%s\n\n", msg.Title, msg.Message)

	for _, p := range state.Players {
		fmt.Fprintf(w, "%-12s square %3d  rolls %3d  avg %.2f  snakes %2d  ladders %2d\n",
			p.Name,
			p.Position,
			p.Stats.TotalRolls,
			rules.AverageDiceValue(p),
			p.Stats.SnakeBites,
			p.Stats.LadderClimbs,
		)
	}
}

// renderLeaderboard prints players ranked by wins
func renderLeaderboard(w io.Writer, leaderboard *models.Leaderboard) {
	if len(leaderboard.Records) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}

	for i, r := range leaderboard.Records {
		fmt.Fprintf(w, "%2d. %-12s wins %3d  games %3d  snakes %3d  ladders %3d\n",
			i+1, r.Name, r.Wins, r.GamesPlayed, r.SnakeBites, r.LadderClimbs)
	}
}
