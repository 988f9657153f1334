package messaging

import "github.com/KirkDiggler/snakes/internal/dice"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// GetTurnMessageInput contains parameters for describing a turn
type GetTurnMessageInput struct {
	// PlayerName is the name of the player who moved
	PlayerName string

	// DiceValue is the rolled value
	DiceValue int

	// From and To are the squares before and after the move
	From int
	To   int

	// Move outcome flags
	SnakeBite   bool
	LadderClimb bool
	Clamped     bool
	Won         bool

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetTurnMessageOutput contains the turn message
type GetTurnMessageOutput struct {
	// Summary is a plain line describing the move
	Summary string

	// Flavor is a tone dependent remark, empty for plain moves
	Flavor string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameOverMessageInput contains parameters for announcing a winner
type GetGameOverMessageInput struct {
	WinnerName string
	TotalRolls int
	Tone       MessageTone
}

// GetGameOverMessageOutput contains the game over message
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DiceRoller picks messages from the pools
	DiceRoller dice.Roller
}
