package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"md-terceirizacao-api/internal/delivery/http/response"
	"md-terceirizacao-api/internal/domain"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Sustained requests per second per key
	RPS float64
	// Burst size
	Burst int
	// Idle entries older than this are evicted
	TTL time.Duration
	// Key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
}

// Enabled reports whether the config describes an active limiter.
func (c RateLimitConfig) Enabled() bool {
	return c.RPS > 0 && c.Burst > 0
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type keyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	cfg     RateLimitConfig
}

func (k *keyedLimiter) allow(key string, now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(k.cfg.RPS), k.cfg.Burst)}
		k.entries[key] = e
	}
	e.lastSeen = now

	// evict idle entries once the map grows
	if len(k.entries) > 1024 {
		for id, entry := range k.entries {
			if now.Sub(entry.lastSeen) > k.cfg.TTL {
				delete(k.entries, id)
			}
		}
	}

	return e.limiter.AllowN(now, 1)
}

// RateLimitMiddleware limits requests per key with a token bucket.
// A disabled config yields a pass-through handler.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}

	kl := &keyedLimiter{entries: make(map[string]*limiterEntry), cfg: cfg}

	return func(c *gin.Context) {
		if !kl.allow(cfg.KeyFunc(c), time.Now()) {
			c.Header("Retry-After", strconv.Itoa(int(1/cfg.RPS)+1))
			response.AbortWithError(c, http.StatusTooManyRequests, domain.MsgTooManyRequests)
			return
		}
		c.Next()
	}
}
