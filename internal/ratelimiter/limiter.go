package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a single process-wide token bucket shared by every client.
// Burst equals the per-second rate, so an idle server absorbs at most one
// second's worth of page-load fan-out.
type Limiter struct {
	l *rate.Limiter
}

// New returns a Limiter admitting ratePerSec requests per second.
// ratePerSec <= 0 returns nil; a nil *Limiter admits everything.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Allow reports whether one request may proceed now. It never blocks.
func (lim *Limiter) Allow() bool {
	if lim == nil {
		return true
	}
	return lim.l.Allow()
}
