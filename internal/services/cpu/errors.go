package cpu

// CPUError is a custom error type for CPU move errors
type CPUError string

// Error implements the error interface
func (e CPUError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput      CPUError = "input cannot be nil"
	ErrNilConfig     CPUError = "config cannot be nil"
	ErrNilDiceRoller CPUError = "dice roller cannot be nil"
	ErrNilClock      CPUError = "clock cannot be nil"
)
