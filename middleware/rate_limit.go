package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	CleanupInterval   time.Duration
	TTL               time.Duration
}

// RateLimiterMiddleware limits each client IP to the configured request
// rate. Used on the credential endpoints to slow down guessing. Idle
// visitors are swept lazily on lookup, no background goroutine to leak.
func RateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	if config.CleanupInterval == 0 {
		config.CleanupInterval = time.Minute
	}
	if config.TTL == 0 {
		config.TTL = 3 * time.Minute
	}

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep = time.Now()
	)

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if time.Since(lastSweep) >= config.CleanupInterval {
			for k, v := range visitors {
				if time.Since(v.lastSeen) > config.TTL {
					delete(visitors, k)
				}
			}
			lastSweep = time.Now()
		}

		v, exists := visitors[ip]
		if !exists {
			limiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
			visitors[ip] = &visitor{limiter, time.Now()}
			return limiter
		}

		v.lastSeen = time.Now()
		return v.limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
