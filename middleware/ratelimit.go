package middleware

import (
	"net/http"
	"sync"
	"time"

	"tonotes/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// limiterEntry holds a rate limiter and the last time it was seen.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore maps a caller key (user or IP) to its token bucket. Stale
// entries are swept on access at most once per minute.
type limiterStore struct {
	mu          sync.Mutex
	entries     map[string]*limiterEntry
	staleAfter  time.Duration
	lastCleanup time.Time
	limit       rate.Limit
	burst       int
}

func newLimiterStore(limit rate.Limit, burst int, staleAfter time.Duration) *limiterStore {
	return &limiterStore{
		entries:     make(map[string]*limiterEntry),
		staleAfter:  staleAfter,
		lastCleanup: time.Now(),
		limit:       limit,
		burst:       burst,
	}
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if now.Sub(s.lastCleanup) > time.Minute {
		cutoff := now.Add(-s.staleAfter)
		for k, e := range s.entries {
			if e.lastSeen.Before(cutoff) {
				delete(s.entries, k)
			}
		}
		s.lastCleanup = now
	}

	if e, ok := s.entries[key]; ok {
		e.lastSeen = now
		return e.limiter
	}
	lim := rate.NewLimiter(s.limit, s.burst)
	s.entries[key] = &limiterEntry{limiter: lim, lastSeen: now}
	return lim
}

// RateLimitMiddleware applies a token bucket per authenticated user, or per
// client IP when the request carries no identity yet.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	store := newLimiterStore(rate.Limit(cfg.RPS), burst, 10*time.Minute)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if userID := c.GetString(ContextUserID); userID != "" {
			key = "uid:" + userID
		}

		if !store.get(key).Allow() {
			c.Header("Retry-After", "1")
			utils.TooManyRequests(c, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
