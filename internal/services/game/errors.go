package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilState         GameError = "game state cannot be nil"
	ErrNoPlayers        GameError = "at least one player is required"
	ErrGameFinished     GameError = "game is already finished"
	ErrInvalidGameState GameError = "invalid game state"
	ErrUnknownBoardMode GameError = "unknown board mode"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDiceRoller    GameError = "dice roller cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
