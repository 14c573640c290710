package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PerformanceConfig 性能监控配置
type PerformanceConfig struct {
	SlowThreshold time.Duration
	SkipPaths     []string
}

// DefaultPerformanceConfig 默认性能配置
func DefaultPerformanceConfig() PerformanceConfig {
	return PerformanceConfig{
		SlowThreshold: 500 * time.Millisecond,
		SkipPaths:     []string{"/health", "/metrics", "/favicon.ico"},
	}
}

// Performance 性能监控中间件
func Performance(log *zap.Logger, cfg PerformanceConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		if latency > cfg.SlowThreshold {
			log.Warn("slow request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.Duration("latency", latency),
			)
		}
		if gin.Mode() == gin.DebugMode {
			c.Header("X-Response-Time", latency.String())
		}
	}
}

// RateLimit allows rpm requests per client IP per minute, counted in memory.
func RateLimit(rpm int) gin.HandlerFunc {
	limiter := newWindowLimiter(rpm, time.Minute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

// windowLimiter is a sliding-window counter keyed by client. Keys whose
// window has expired are swept at most once per window.
type windowLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	requests  map[string][]time.Time
	lastSweep time.Time
}

func newWindowLimiter(limit int, window time.Duration) *windowLimiter {
	return &windowLimiter{
		limit:    limit,
		window:   window,
		requests: make(map[string][]time.Time),
	}
}

func (l *windowLimiter) allow(key string, now time.Time) bool {
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	valid := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	if len(valid) >= l.limit {
		l.requests[key] = valid
		return false
	}
	l.requests[key] = append(valid, now)
	return true
}

// sweep drops keys with no request after cutoff. Callers hold mu.
func (l *windowLimiter) sweep(cutoff time.Time) {
	for key, hits := range l.requests {
		if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
			delete(l.requests, key)
		}
	}
}

// Limiter is a shared rate limiter such as the redis-backed one.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// SharedRateLimit limits by client IP through limiter. When the limiter is
// unavailable requests are let through and the error is logged.
func SharedRateLimit(limiter Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	c.Header("Retry-After", "60")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       "Rate limit exceeded",
		"retry_after": 60,
	})
}
