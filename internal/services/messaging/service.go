package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/snakes/internal/dice"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	roller := config.DiceRoller
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

// pick returns a random entry of messages
func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(0, len(messages)-1)]
}

// GetTurnMessage returns a message describing a resolved turn
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneFunny
	}

	summary := fmt.Sprintf("%s rolled %d: %d → %d", input.PlayerName, input.DiceValue, input.From, input.To)
	switch {
	case input.SnakeBite && input.LadderClimb:
		summary += " (snake, then ladder)"
	case input.SnakeBite:
		summary += " (snake)"
	case input.LadderClimb:
		summary += " (ladder)"
	case input.Clamped:
		summary += " (edge of the board)"
	}

	var messages []string
	switch {
	case input.Won:
		messages = winFlavor(tone, input.PlayerName)
	case input.SnakeBite && input.LadderClimb:
		messages = []string{
			fmt.Sprintf("%s got bitten and bounced straight up a ladder!", input.PlayerName),
			"Down the snake, up the ladder. What a ride.",
		}
	case input.SnakeBite:
		messages = snakeFlavor(tone, input.PlayerName)
	case input.LadderClimb:
		messages = ladderFlavor(tone, input.PlayerName)
	}

	var flavor string
	if len(messages) > 0 {
		flavor = s.pick(messages)
	}

	return &GetTurnMessageOutput{
		Summary: summary,
		Flavor:  flavor,
		Tone:    tone,
	}, nil
}

func snakeFlavor(tone MessageTone, name string) []string {
	switch tone {
	case ToneNeutral:
		return []string{
			fmt.Sprintf("%s landed on a snake.", name),
		}
	case ToneEncouraging:
		return []string{
			fmt.Sprintf("Chin up, %s! Plenty of ladders left.", name),
			"A setback, not the end. Keep rolling!",
		}
	default:
		return []string{
			fmt.Sprintf("Sssssorry, %s. Back down you go!", name),
			fmt.Sprintf("%s just found out why nobody likes snakes.", name),
			"Hiss! That one's going to leave a mark.",
			fmt.Sprintf("The snake says hi, %s. And goodbye to your lead.", name),
		}
	}
}

func ladderFlavor(tone MessageTone, name string) []string {
	switch tone {
	case ToneNeutral:
		return []string{
			fmt.Sprintf("%s climbed a ladder.", name),
		}
	case ToneEncouraging:
		return []string{
			fmt.Sprintf("Great climb, %s!", name),
			"Up and up! Keep it going!",
		}
	default:
		return []string{
			fmt.Sprintf("Look at %s go! Somebody call the fire department.", name),
			fmt.Sprintf("%s takes the express elevator.", name),
			"Climbing the corporate ladder, one roll at a time.",
			fmt.Sprintf("%s is moving on up!", name),
		}
	}
}

func winFlavor(tone MessageTone, name string) []string {
	switch tone {
	case ToneNeutral:
		return []string{
			fmt.Sprintf("%s reached the final square.", name),
		}
	case ToneEncouraging:
		return []string{
			fmt.Sprintf("Well played, %s!", name),
		}
	default:
		return []string{
			fmt.Sprintf("%s made it to 100! The snakes are furious.", name),
			fmt.Sprintf("Victory for %s! Somebody get them a trophy shaped like a ladder.", name),
			fmt.Sprintf("%s wins! Everyone else, back to square one.", name),
		}
	}
}

// GetGameOverMessage returns a message announcing the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.WinnerName == "" {
		return &GetGameOverMessageOutput{
			Title:   "Game Over",
			Message: "The game ended without a winner.",
		}, nil
	}

	titles := []string{
		"Game Over!",
		"We Have A Winner!",
		"Top Of The Board!",
	}
	if input.Tone == ToneNeutral {
		titles = []string{"Game Over"}
	}

	return &GetGameOverMessageOutput{
		Title:   s.pick(titles),
		Message: fmt.Sprintf("%s wins after %d rolls in total.", input.WinnerName, input.TotalRolls),
	}, nil
}
