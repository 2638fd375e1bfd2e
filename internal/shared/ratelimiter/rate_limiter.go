// Package ratelimiter provides a fixed-window request limiter keyed by caller.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter restricts how many times a key (typically a client IP) may perform
// an operation within a fixed interval.
type Limiter struct {
	mu       sync.Mutex
	limit    int
	interval time.Duration
	windows  map[string]*window
	now      func() time.Time
}

type window struct {
	start time.Time
	count int
}

// New creates a Limiter allowing up to limit calls per key per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  map[string]*window{},
		now:      time.Now,
	}
}

// Allow reports whether the caller identified by key is still within its
// budget for the current window. The counter resets once the interval
// has elapsed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= l.limit
}
