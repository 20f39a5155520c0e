package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps how many requests a key (client IP) may make inside a
// sliding window. State lives in memory; a restart resets all counters.
type RateLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go l.reap()
	return l
}

// Allow records a hit for key and reports whether it stayed within the
// limit. Hits older than the window no longer count.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	fresh := l.hits[key][:0]
	for _, at := range l.hits[key] {
		if now.Sub(at) < l.window {
			fresh = append(fresh, at)
		}
	}
	if len(fresh) >= l.limit {
		l.hits[key] = fresh
		return false
	}
	l.hits[key] = append(fresh, now)
	return true
}

// reap drops keys that went quiet for a full window so the map does not
// grow without bound.
func (l *RateLimiter) reap() {
	for range time.Tick(l.window) {
		l.mu.Lock()
		now := time.Now()
		for key, times := range l.hits {
			if len(times) == 0 || now.Sub(times[len(times)-1]) >= l.window {
				delete(l.hits, key)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit rejects requests over the per-IP limit with 429.
func RateLimit(l *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
