package middleware

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const defaultLimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter throttles requests per client IP with a token bucket each.
// Idle buckets are swept in the background.
type RateLimiter struct {
	enabled bool
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	logger  *slog.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter builds the limiter from config and stops its sweeper with the app.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return &RateLimiter{logger: params.Logger}
	}

	rl := newRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst, cfg.IdleTTL, params.Logger)
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go rl.sweepLoop()

			return nil
		},
		OnStop: func(context.Context) error {
			rl.Stop()

			return nil
		},
	})

	return rl
}

func newRateLimiter(limit rate.Limit, burst int, idleTTL time.Duration, logger *slog.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}

	return &RateLimiter{
		enabled:  true,
		limit:    limit,
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
}

// Stop ends the background sweeper.
func (rl *RateLimiter) Stop() {
	if rl.stopCh == nil {
		return
	}
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Limit rejects a client that exhausted its bucket with 429 and a Retry-After header.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !rl.enabled {
			return next(c)
		}

		clientIP := c.RealIP()
		if rl.allow(clientIP) {
			return next(c)
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
			slog.String("remote_ip", clientIP),
			slog.String("route", c.Path()),
		)
		c.Response().Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))

		return domainerrors.ErrTooManyRequests
	}
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.limiters)
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	now := rl.now()
	entry, ok := rl.limiters[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastAccess = now
	rl.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) retryAfterSeconds() int {
	return max(1, int(math.Ceil(1/float64(rl.limit))))
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.idleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep forgets clients idle for longer than idleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastAccess) > rl.idleTTL {
			delete(rl.limiters, key)
		}
	}
}
