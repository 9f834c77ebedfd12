package throttle

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultMaxKeys = 1000
	defaultTTL     = 5 * time.Minute
)

// Keyed hands out one token bucket per key. Idle keys expire from the LRU.
type Keyed struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewKeyed creates a per-key limiter allowing requestsPerMin per key.
func NewKeyed(requestsPerMin int) *Keyed {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &Keyed{
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultMaxKeys, nil, defaultTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow reports an error when key has exhausted its bucket.
func (k *Keyed) Allow(key string) error {
	limiter, ok := k.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(k.rate, k.burst)
		k.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

// Len returns the number of keys currently tracked.
func (k *Keyed) Len() int {
	return k.limiters.Len()
}
