package http

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimit configures per-client request throttling. RPS 0 disables it.
type RateLimit struct {
	RPS   float64
	Burst int
	// Redis, when set, shares the counters between server replicas.
	Redis *redis.Client
}

// RateLimitMiddleware returns nil when limiting is disabled.
func RateLimitMiddleware(cfg RateLimit, logger *slog.Logger) echo.MiddlewareFunc {
	if cfg.RPS <= 0 {
		return nil
	}

	var store middleware.RateLimiterStore
	if cfg.Redis != nil {
		store = NewRedisStore(cfg.Redis, cfg.RPS, time.Minute, logger)
	} else {
		store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: 3 * time.Minute,
		})
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == "/healthz" },
		Store:   store,
	})
}

// RedisStore is a fixed-window counter kept in redis.
type RedisStore struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, rps float64, window time.Duration, logger *slog.Logger) *RedisStore {
	limit := int64(math.Ceil(rps * window.Seconds()))
	if limit < 1 {
		limit = 1
	}
	return &RedisStore{client: client, limit: limit, window: window, logger: logger, now: time.Now}
}

// Allow fails open: a redis outage must not take the readings down.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := s.key(identifier)
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("rate limit store unavailable", "error", err)
		return true, nil
	}
	return incr.Val() <= s.limit, nil
}

func (s *RedisStore) key(identifier string) string {
	slot := s.now().UnixNano() / int64(s.window)
	return fmt.Sprintf("tuvi:ratelimit:%s:%d", identifier, slot)
}
