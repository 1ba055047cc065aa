package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
	"golang.org/x/time/rate"
)

var ErrRateLimited = apperror.New(http.StatusTooManyRequests, "too many requests")

// idleTTL is how long an IP may stay quiet before its limiter is forgotten.
const idleTTL = 3 * time.Minute

// IPRateLimiter manages rate limiters for each IP
type IPRateLimiter struct {
	ips       map[string]*rateLimiterEntry
	mu        sync.Mutex
	r         rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a new IP-based rate limiter
// r = requests per second, burst = max burst size
func NewIPRateLimiter(r rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:       make(map[string]*rateLimiterEntry),
		r:         r,
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// GetLimiter returns the rate limiter for the given IP.
// Idle entries are swept inline at most once per idleTTL.
func (rl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > idleTTL {
		for k, entry := range rl.ips {
			if now.Sub(entry.lastSeen) > idleTTL {
				delete(rl.ips, k)
			}
		}
		rl.lastSweep = now
	}

	entry, exists := rl.ips[ip]
	if !exists {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.r, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// Len reports how many IPs are currently tracked.
func (rl *IPRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.ips)
}

// RateLimit rejects requests beyond the per-IP budget with 429.
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.GetLimiter(ip).Allow() {
			logger.Warn().
				Str("ip", ip).
				Str("path", c.Request.URL.Path).
				Msg("rate limit exceeded")

			response.Abort(c, ErrRateLimited)
			return
		}

		c.Next()
	}
}
