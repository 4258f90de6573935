package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"campmed/internal/errors"
	"campmed/internal/logger"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimiter counts requests per client IP and route in fixed Redis windows.
type RateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
	log    *logger.Logger
}

// NewRateLimiter creates a limiter allowing max requests per window. A nil
// client or a non-positive max disables limiting.
func NewRateLimiter(client *redis.Client, max int, window time.Duration, log *logger.Logger) *RateLimiter {
	return &RateLimiter{client: client, max: max, window: window, log: log}
}

// Middleware rejects requests over the limit with 429. Redis failures let
// the request through.
func (r *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r.client == nil || r.max <= 0 {
				return next(c)
			}

			key := rateLimitKeyPrefix + c.Path() + ":" + c.RealIP()
			count, err := r.hit(c.Request().Context(), key)
			if err != nil {
				r.log.Warn("rate_limit_unavailable", "error", err.Error())
				return next(c)
			}

			if count > int64(r.max) {
				r.log.RateLimitExceeded(c.RealIP(), c.Path())
				return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
					Message: "too many requests",
					Code:    "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}

// hit increments the window counter. SET NX EX starts the window on the first
// request and INCR keeps the TTL, which works on any Redis version.
func (r *RateLimiter) hit(ctx context.Context, key string) (int64, error) {
	pipe := r.client.TxPipeline()
	pipe.SetNX(ctx, key, 0, r.window)
	incrCmd := pipe.Incr(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return incrCmd.Val(), nil
}
