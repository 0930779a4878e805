package store

import (
	"sync"
	"time"
)

type rateWindow struct {
	count     int
	resetTime time.Time
}

// RateLimiter enforces a fixed window of at most maxRequests per session.
// Windows reset lazily on the first request observed after expiry, not on a
// timer. Rejected requests do not mutate the window.
type RateLimiter struct {
	mu          sync.Mutex
	sessions    map[string]*rateWindow
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		sessions:    make(map[string]*rateWindow),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow reports whether the session may issue another request, consuming one
// slot of the current window when it may.
func (r *RateLimiter) Allow(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	w, ok := r.sessions[sessionID]
	if !ok || now.After(w.resetTime) {
		r.sessions[sessionID] = &rateWindow{count: 1, resetTime: now.Add(r.window)}
		return true
	}

	if w.count >= r.maxRequests {
		return false
	}

	w.count++
	return true
}

// Remaining returns how many requests the session has left in its window.
func (r *RateLimiter) Remaining(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.sessions[sessionID]
	if !ok || r.now().After(w.resetTime) {
		return r.maxRequests
	}
	remaining := r.maxRequests - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Limit returns the configured per-window request cap.
func (r *RateLimiter) Limit() int {
	return r.maxRequests
}
