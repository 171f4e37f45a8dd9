package middleware

import (
	"net/http"
	"sync"
	"time"

	"zhanyixia/config"

	"github.com/gin-gonic/gin"
)

// IPLimiter enforces a fixed-window request quota per client address. Each
// address gets one counter that resets when its window elapses; a background
// sweep evicts idle addresses so the map does not keep an entry per visitor
// forever.
type IPLimiter struct {
	mu     sync.Mutex
	hits   map[string]*hitWindow
	limit  int
	window time.Duration
	now    func() time.Time
	done   chan struct{}
}

type hitWindow struct {
	start time.Time
	count int
}

func NewIPLimiter(cfg *config.RateLimitConfig) *IPLimiter {
	l := &IPLimiter{
		hits:   make(map[string]*hitWindow),
		limit:  cfg.Requests,
		window: cfg.Window,
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether one more request from key fits in its current window.
func (l *IPLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	w := l.hits[key]
	if w == nil || now.Sub(w.start) >= l.window {
		l.hits[key] = &hitWindow{start: now, count: 1}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Stop ends the background sweep.
func (l *IPLimiter) Stop() {
	close(l.done)
}

func (l *IPLimiter) sweep() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-tick.C:
			l.evictExpired()
		}
	}
}

func (l *IPLimiter) evictExpired() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for k, w := range l.hits {
		if now.Sub(w.start) >= l.window {
			delete(l.hits, k)
		}
	}
}

// RateLimit rejects requests over the per-IP quota with 429.
func RateLimit(l *IPLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
