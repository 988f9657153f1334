package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/KirkDiggler/snakes/internal/models"
	gameRepo "github.com/KirkDiggler/snakes/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/snakes/internal/repositories/player"
	"github.com/KirkDiggler/snakes/internal/services/cpu"
	"github.com/KirkDiggler/snakes/internal/services/game"
	"github.com/KirkDiggler/snakes/internal/services/messaging"
)

var (
	// ErrQuit is returned when a human player quits mid game
	ErrQuit = errors.New("player quit the game")

	// ErrInputClosed is returned when input ends before the game does
	ErrInputClosed = errors.New("input closed before the game finished")
)

// Config holds the configuration for the terminal handler
type Config struct {
	// Input and Output for human players
	In  io.Reader
	Out io.Writer

	// AutoRoll rolls for human players without waiting for input
	AutoRoll bool

	// Difficulty of CPU players
	Difficulty models.Difficulty

	// Tone of turn messages
	Tone messaging.MessageTone

	// Services
	GameService      game.Service
	CPUService       cpu.Service
	MessagingService messaging.Service

	// Optional repositories; nil disables persistence
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
}

// Handler drives a game from a terminal, one turn at a time
type Handler struct {
	in     *bufio.Scanner
	out    io.Writer
	config *Config
}

// PlayInput contains parameters for playing a game
type PlayInput struct {
	// State is the starting snapshot
	State *models.GameState
}

// PlayOutput contains the result of a game
type PlayOutput struct {
	// State is the final snapshot
	State *models.GameState
}

// New creates a new terminal handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.CPUService == nil {
		return nil, errors.New("cpu service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.In == nil && !cfg.AutoRoll {
		return nil, errors.New("input cannot be nil unless rolls are automatic")
	}

	h := &Handler{
		out:    cfg.Out,
		config: cfg,
	}
	if cfg.In != nil {
		h.in = bufio.NewScanner(cfg.In)
	}

	return h, nil
}

// Play runs the turn loop until a player wins. Each turn the current player's
// roll is resolved before anyone else may act.
func (h *Handler) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.New("input and state cannot be nil")
	}

	state := input.State
	renderBoard(h.out, state)

	if err := h.save(ctx, state); err != nil {
		return nil, err
	}

	for !state.Status.IsFinished() {
		if err := ctx.Err(); err != nil {
			return &PlayOutput{State: state}, err
		}

		diceValue, err := h.roll(ctx, state)
		if err != nil {
			return &PlayOutput{State: state}, err
		}

		turn, err := h.config.GameService.TakeTurn(ctx, &game.TakeTurnInput{
			State:     state,
			DiceValue: diceValue,
		})
		if err != nil {
			return &PlayOutput{State: state}, fmt.Errorf("failed to take turn: %w", err)
		}

		msg, err := h.config.MessagingService.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
			PlayerName:  turn.Move.Player.Name,
			DiceValue:   turn.DiceValue,
			From:        turn.Move.From,
			To:          turn.Move.Player.Position,
			SnakeBite:   turn.Move.SnakeBite,
			LadderClimb: turn.Move.LadderClimb,
			Clamped:     turn.Move.Clamped,
			Won:         turn.Won,
			Tone:        h.config.Tone,
		})
		if err != nil {
			return &PlayOutput{State: state}, fmt.Errorf("failed to get turn message: %w", err)
		}
		renderTurn(h.out, turn.State.Turn, msg)

		state = turn.State
		if err := h.save(ctx, state); err != nil {
			return &PlayOutput{State: state}, err
		}
	}

	h.finish(ctx, state)

	return &PlayOutput{State: state}, nil
}

// roll gets the current player's dice value from the CPU or a human
func (h *Handler) roll(ctx context.Context, state *models.GameState) (int, error) {
	current := state.CurrentPlayer()
	if current == nil {
		return 0, game.ErrInvalidGameState
	}

	if current.IsCPU {
		output, err := h.config.CPUService.RequestMove(ctx, &cpu.RequestMoveInput{
			Player:     *current,
			Snakes:     state.Snakes,
			Ladders:    state.Ladders,
			Difficulty: h.config.Difficulty,
			DiceMin:    state.DiceMin,
			DiceMax:    state.DiceMax,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to get CPU move: %w", err)
		}
		return output.DiceValue, nil
	}

	if !h.config.AutoRoll {
		fmt.Fprintf(h.out, "%s is on %d. Press enter to roll (q to quit): ", current.Name, current.Position)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}
			return 0, ErrInputClosed
		}
		if strings.EqualFold(strings.TrimSpace(h.in.Text()), "q") {
			return 0, ErrQuit
		}
	}

	output, err := h.config.GameService.RollDice(ctx, &game.RollDiceInput{
		Min: state.DiceMin,
		Max: state.DiceMax,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to roll dice: %w", err)
	}
	return output.Value, nil
}

// save persists a snapshot when a game repository is configured
func (h *Handler) save(ctx context.Context, state *models.GameState) error {
	if h.config.GameRepo == nil {
		return nil
	}

	if err := h.config.GameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: state}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// finish announces the winner and records every player's result
func (h *Handler) finish(ctx context.Context, state *models.GameState) {
	winnerName := ""
	if winner := state.Winner(); winner != nil {
		winnerName = winner.Name
	}

	msg, err := h.config.MessagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerName: winnerName,
		TotalRolls: state.TotalRolls,
		Tone:       h.config.Tone,
	})
	if err != nil {
		log.Printf("Error getting game over message: %v", err)
	} else {
		renderGameOver(h.out, msg, state)
	}

	if h.config.PlayerRepo == nil {
		return
	}

	for _, p := range state.Players {
		err := h.config.PlayerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
			Name:  p.Name,
			Won:   p.IsWinner,
			Stats: p.Stats,
		})
		if err != nil {
			log.Printf("Error recording result for %s: %v", p.Name, err)
		}
	}
}

// ShowLeaderboard prints the top players by wins
func (h *Handler) ShowLeaderboard(ctx context.Context, limit int) error {
	if h.config.PlayerRepo == nil {
		return errors.New("player repository is not configured")
	}

	leaderboard, err := h.config.PlayerRepo.GetLeaderboard(ctx, &playerRepo.GetLeaderboardInput{Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to get leaderboard: %w", err)
	}

	renderLeaderboard(h.out, leaderboard)
	return nil
}
