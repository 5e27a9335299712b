package middleware

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"study-tracker/pkg/response"
)

var errRateLimited = errors.New("too many requests")

// rateLimiter keys token buckets by client IP. Idle buckets age out of the
// LRU so the map cannot grow without bound.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: requestsPerMin,
	}
}

func (rl *rateLimiter) allow(source string) bool {
	limiter, ok := rl.limiters.Get(source)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(source, limiter)
	}
	return limiter.Allow()
}

// clientIP resolves the caller address, preferring proxy headers.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

// RateLimit enforces the per-IP request budget. A nil limiter is a no-op.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		ip := clientIP(c)
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			response.TooManyRequests(c, errRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
