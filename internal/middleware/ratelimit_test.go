package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zhanyixia/config"

	"github.com/gin-gonic/gin"
)

// testLimiter returns a limiter on a manual clock; move *clock to advance time.
func testLimiter(limit int, window time.Duration) (*IPLimiter, *time.Time) {
	clock := new(time.Time)
	*clock = time.Unix(1700000000, 0)
	l := &IPLimiter{
		hits:   make(map[string]*hitWindow),
		limit:  limit,
		window: window,
		now:    func() time.Time { return *clock },
		done:   make(chan struct{}),
	}
	return l, clock
}

func TestIPLimiter_QuotaWithinWindow(t *testing.T) {
	l, _ := testLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d denied inside quota", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request over quota allowed")
	}
	// other addresses are unaffected
	if !l.Allow("10.0.0.2") {
		t.Error("separate address denied")
	}
}

func TestIPLimiter_WindowReset(t *testing.T) {
	l, clock := testLimiter(1, time.Minute)
	if !l.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second request in same window allowed")
	}
	*clock = clock.Add(time.Minute)
	if !l.Allow("10.0.0.1") {
		t.Error("request after window elapsed denied")
	}
}

func TestIPLimiter_EvictExpired(t *testing.T) {
	l, clock := testLimiter(5, time.Minute)
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	*clock = clock.Add(2 * time.Minute)
	l.Allow("10.0.0.3")
	l.evictExpired()
	if len(l.hits) != 1 {
		t.Errorf("entries after eviction = %d, want 1", len(l.hits))
	}
	if _, ok := l.hits["10.0.0.3"]; !ok {
		t.Error("live entry evicted")
	}
}

func TestIPLimiter_Stop(t *testing.T) {
	l := NewIPLimiter(&config.RateLimitConfig{Requests: 1, Window: time.Minute})
	l.Stop()
	// the sweep goroutine must have an exit path; a second Stop would panic,
	// one is enough to cover it
}

func TestRateLimitMiddleware(t *testing.T) {
	l, _ := testLimiter(2, time.Minute)
	r := gin.New()
	r.GET("/x", RateLimit(l), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}
}
