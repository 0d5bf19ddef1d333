package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP. Idle buckets are dropped lazily.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	visitors := make(map[string]*visitor)
	var mu sync.Mutex
	lastSweep := time.Now()

	getVisitor := func(ip string, now time.Time) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) > visitorIdleTTL {
			for key, v := range visitors {
				if now.Sub(v.lastSeen) > visitorIdleTTL {
					delete(visitors, key)
				}
			}
			lastSweep = now
		}

		v, exists := visitors[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(r, b)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP(), time.Now()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
