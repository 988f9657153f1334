package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})

	for i := 0; i < 10000; i++ {
		v := r.Roll(DefaultMin, DefaultMax)
		assert.GreaterOrEqual(t, v, DefaultMin)
		assert.LessOrEqual(t, v, DefaultMax)
	}
}

func TestRollIsRoughlyUniform(t *testing.T) {
	r := New(&Config{Seed: 7})

	const trials = 60000
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		counts[r.Roll(1, 6)]++
	}

	assert.Len(t, counts, 6)
	expected := trials / 6
	for face := 1; face <= 6; face++ {
		// within 5% of the expected count
		assert.InDelta(t, expected, counts[face], float64(expected)*0.05, "face %d", face)
	}
}

func TestRollSwapsReversedBounds(t *testing.T) {
	r := New(&Config{Seed: 1})

	for i := 0; i < 100; i++ {
		v := r.Roll(10, 5)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 10)
	}
}

func TestRollSingleValueRange(t *testing.T) {
	r := New(nil)
	assert.Equal(t, 3, r.Roll(3, 3))
}

func TestSameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(1, 100), b.Roll(1, 100))
	}
}
