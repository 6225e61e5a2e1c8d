package api

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/sitepress/sitepress-backend/models"
)

const (
	defaultLoginAttemptsPerMinute = 5
	loginLimiterCacheSize         = 10_000
)

// loginRateLimiter throttles the credential endpoints per client ip. Idle limiters
// are evicted after a few minutes, at which point they would be full again anyway.
type loginRateLimiter struct {
	m        sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func newLoginRateLimiter(attemptsPerMinute int) *loginRateLimiter {
	if attemptsPerMinute <= 0 {
		attemptsPerMinute = defaultLoginAttemptsPerMinute
	}
	return &loginRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](loginLimiterCacheSize, nil, 5*time.Minute),
		limit:    rate.Limit(float64(attemptsPerMinute) / 60),
		burst:    attemptsPerMinute,
	}
}

func (l *loginRateLimiter) allow(ip string) bool {
	l.m.Lock()
	defer l.m.Unlock()

	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, limiter)
	}
	return limiter.Allow()
}

func (l *loginRateLimiter) Middleware(c *gin.Context) {
	if !l.allow(c.ClientIP()) {
		presentError(c.Request.Context(), c, models.TooManyRequestsError)
		c.Abort()
		return
	}
	c.Next()
}
