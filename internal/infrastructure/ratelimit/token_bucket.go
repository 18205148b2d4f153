package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a token bucket that adds refillRate tokens every refillPeriod
type TokenBucket struct {
	mu           sync.Mutex
	capacity     int
	tokens       int
	refillRate   int
	refillPeriod time.Duration
	lastRefill   time.Time
	now          func() time.Time
}

// NewTokenBucket creates a full bucket
func NewTokenBucket(capacity, refillRate int, refillPeriod time.Duration) *TokenBucket {
	return newTokenBucketWithClock(capacity, refillRate, refillPeriod, time.Now)
}

func newTokenBucketWithClock(capacity, refillRate int, refillPeriod time.Duration, now func() time.Time) *TokenBucket {
	if refillPeriod <= 0 {
		refillPeriod = time.Second
	}
	return &TokenBucket{
		capacity:     capacity,
		tokens:       capacity,
		refillRate:   refillRate,
		refillPeriod: refillPeriod,
		lastRefill:   now(),
		now:          now,
	}
}

// Allow consumes one token if available
func (tb *TokenBucket) Allow() bool {
	return tb.AllowN(1)
}

// AllowN consumes n tokens if all of them are available
func (tb *TokenBucket) AllowN(n int) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens >= n {
		tb.tokens -= n
		return true
	}

	return false
}

// Tokens returns the current number of available tokens
func (tb *TokenBucket) Tokens() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return tb.tokens
}

// refill must be called with the lock held
func (tb *TokenBucket) refill() {
	now := tb.now()
	periods := int(now.Sub(tb.lastRefill) / tb.refillPeriod)
	if periods <= 0 {
		return
	}

	tb.tokens += periods * tb.refillRate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}

	// keep the remainder so partial periods are not lost
	tb.lastRefill = tb.lastRefill.Add(time.Duration(periods) * tb.refillPeriod)
}
