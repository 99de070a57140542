package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go careerparty/internal/dice Roller

// Roller provides the randomness the draw engine needs
type Roller interface {
	// Roll generates a random dice roll with the specified number of sides
	Roll(sides int) int

	// Chance reports true with probability p
	Chance(p float64) bool

	// Intn returns a uniform integer in [0, n)
	Intn(n int) int
}

// RandomRoller implements Roller with a seedable PRNG
type RandomRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Chance reports true with probability p
func (r *RandomRoller) Chance(p float64) bool {
	return r.random.Float64() < p
}

// Intn returns a uniform integer in [0, n)
func (r *RandomRoller) Intn(n int) int {
	return r.random.Intn(n)
}
