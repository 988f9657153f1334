package dice

import (
	"math/rand"
	"sync"
	"time"
)

const (
	// DefaultMin is the lowest face of a standard die
	DefaultMin = 1

	// DefaultMax is the highest face of a standard die
	DefaultMax = 6
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/snakes/internal/dice Roller

// Roller produces uniformly distributed integers
type Roller interface {
	// Roll returns an integer in [min, max]
	Roll(min, max int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random integer in [min, max]. Bounds given in the wrong
// order are swapped.
func (r *roller) Roll(min, max int) int {
	if min > max {
		min, max = max, min
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(max-min+1) + min
}
