package middleware

import (
	"sync"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/config"
	"github.com/ArowuTest/leadcapture-backend/internal/observer"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an idle client's limiter is kept
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out one token bucket per client IP
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	lastGC   time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with
// the given burst for every client.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		lastGC:   time.Now(),
	}
}

// Allow reports whether a request from ip may proceed now
func (l *IPRateLimiter) Allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastGC) > idleLimiterTTL {
		for key, cl := range l.limiters {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(l.limiters, key)
			}
		}
		l.lastGC = now
	}

	cl, ok := l.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimitMiddleware rejects clients that exceed the configured rate with
// 429. It is a no-op when rate limiting is disabled.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg == nil || !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			observer.IncRateLimited()
			_ = c.Error(apperrors.ErrRateLimited)
			c.AbortWithStatusJSON(apperrors.StatusCode(apperrors.ErrRateLimited), gin.H{"error": "Too many requests, slow down"})
			return
		}
		c.Next()
	}
}
