// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's random generator so the whole simulation can run
// off one seed. A seed of 0 falls back to the current time.
type PRNGService struct {
	rng *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}
