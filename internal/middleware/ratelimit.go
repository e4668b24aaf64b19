package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// limiterTTL is how long a client entry may stay idle before eviction.
	limiterTTL = 3 * time.Minute
	// limiterSweepInterval caps how often the map is scanned for idle entries.
	limiterSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiters holds one token bucket per client IP. Idle entries are swept
// lazily on lookup so the map does not grow for the process lifetime.
type rateLimiters struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rps       float64
	burst     int
	lastSweep time.Time
}

func newRateLimiters(rps float64, burst int) *rateLimiters {
	return &rateLimiters{
		clients: make(map[string]*clientLimiter),
		rps:     rps,
		burst:   burst,
	}
}

func (r *rateLimiters) get(ip string, now time.Time) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) >= limiterSweepInterval {
		r.sweep(now)
	}

	c, ok := r.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(r.rps), r.burst)}
		r.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep drops entries idle longer than the TTL. Callers hold mu.
func (r *rateLimiters) sweep(now time.Time) {
	for ip, c := range r.clients {
		if now.Sub(c.lastSeen) > limiterTTL {
			delete(r.clients, ip)
		}
	}
	r.lastSweep = now
}

// RateLimit throttles requests per client IP with a token bucket.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := newRateLimiters(rps, burst)
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP(), time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
