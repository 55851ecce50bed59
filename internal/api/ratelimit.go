package api

import (
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter enforces per-key (client IP) request rate limits using token buckets.
// Idle buckets expire from the cache after ten minutes.
type RateLimiter struct {
	limiters *cache.Cache
	r        rate.Limit
	burst    int
	log      *zap.Logger
}

// NewRateLimiter creates a rate limiter.
// rpm is requests per minute, burst is the max burst allowed.
// If rpm <= 0, the rate limiter is disabled (always allows).
func NewRateLimiter(rpm, burst int, log *zap.Logger) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	r := rate.Limit(0)
	if rpm > 0 {
		r = rate.Limit(float64(rpm) / 60.0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RateLimiter{
		limiters: cache.New(10*time.Minute, 5*time.Minute),
		r:        r,
		burst:    burst,
		log:      log,
	}
}

// Allow reports whether a request from key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	if !rl.Enabled() {
		return true
	}
	if !rl.limiterFor(key).Allow() {
		rl.log.Warn("rate limited", zap.String("key", key))
		return false
	}
	return true
}

// Enabled returns true if the rate limiter is active.
func (rl *RateLimiter) Enabled() bool {
	return rl.r > 0
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	if x, found := rl.limiters.Get(key); found {
		l := x.(*rate.Limiter)
		// Touch to extend the idle expiry.
		rl.limiters.SetDefault(key, l)
		return l
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	// Add fails if another request created the bucket first.
	if err := rl.limiters.Add(key, l, cache.DefaultExpiration); err != nil {
		if x, found := rl.limiters.Get(key); found {
			return x.(*rate.Limiter)
		}
	}
	return l
}
