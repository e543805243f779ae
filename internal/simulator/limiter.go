package simulator

import (
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

// ErrRateLimited indicates a caller exceeded the RPC rate limit.
var ErrRateLimited = errors.New("rate limit exceeded")

// Limiter enforces per-caller limits on the RPC endpoint using local
// token buckets keyed by bearer token.
type Limiter struct {
	enabled bool
	rps     float64
	burst   int

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter builds a limiter allowing rps requests per second with the
// given burst per caller. A non-positive rps disables limiting.
func NewLimiter(rps float64, burst int) *Limiter {
	if rps <= 0 {
		return &Limiter{enabled: false}
	}
	if burst <= 0 {
		burst = int(rps * 2)
		if burst < 1 {
			burst = 1
		}
	}
	return &Limiter{
		enabled: true,
		rps:     rps,
		burst:   burst,
		local:   make(map[string]*rate.Limiter),
	}
}

// Allow verifies whether the caller may perform the next request.
func (l *Limiter) Allow(caller string) error {
	if !l.enabled {
		return nil
	}
	if caller == "" {
		caller = "anonymous"
	}

	l.mu.Lock()
	limiter := l.local[caller]
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.local[caller] = limiter
	}
	l.mu.Unlock()

	if !limiter.Allow() {
		return ErrRateLimited
	}
	return nil
}
