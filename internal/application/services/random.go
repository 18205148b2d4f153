package services

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// lockedRand makes a *rand.Rand safe for concurrent handlers
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(rnd *rand.Rand) *lockedRand {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &lockedRand{rnd: rnd}
}

// intBetween returns a value in [lo, hi]
func (r *lockedRand) intBetween(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rnd.Intn(hi-lo+1)
}

// priceBetween returns a value in [lo, hi) rounded to cents
func (r *lockedRand) priceBetween(lo, hi float64) float64 {
	r.mu.Lock()
	v := lo + r.rnd.Float64()*(hi-lo)
	r.mu.Unlock()
	return math.Round(v*100) / 100
}

func (r *lockedRand) choice(options ...string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return options[r.rnd.Intn(len(options))]
}
