package middleware

import (
	"sync"
	"time"

	"voterdesk/config"
	domainerrors "voterdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL = 10 * time.Minute
	authBurst      = 5
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*limiterEntry
}

// NewRateLimiter allows reqPerSec sustained requests per IP with bursts of burst.
func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:   rate.Limit(reqPerSec),
		burst:   max(burst, 1),
		now:     time.Now,
		clients: make(map[string]*limiterEntry),
	}
}

func (r *RateLimiter) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.clients[key]
	if !ok {
		for client, idle := range r.clients {
			if now.Sub(idle.lastSeen) > limiterIdleTTL {
				delete(r.clients, client)
			}
		}

		entry = &limiterEntry{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (r *RateLimiter) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !r.allow(c.RealIP()) {
			c.Response().Header().Set(echo.HeaderRetryAfter, "1")

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}

// NewAuthRateLimiter builds the /auth limiter from auth.rateLimit. It
// returns nil when throttling is disabled.
func NewAuthRateLimiter(cfg *config.Config) *RateLimiter {
	if cfg.Auth == nil || cfg.Auth.RateLimit <= 0 {
		return nil
	}

	return NewRateLimiter(cfg.Auth.RateLimit, authBurst)
}
