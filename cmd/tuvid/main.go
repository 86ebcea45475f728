package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/quotes"
	httpadapter "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/http"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/app"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/config"
)

// stdRNG delegates to math/rand/v2 (auto-seeded).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if name := cfg.MissingCredential(); name != "" {
		logger.Warn("generation credential not set; generation endpoints will answer with a configuration error",
			"provider", cfg.LLMProvider, "env", name)
	}

	text, images := newProviders(cfg, logger)
	svc := app.NewService(text, images, stdRNG{}, cfg.StrictSchema, logger)

	opts := httpadapter.ServerOptions{
		BodyLimit: cfg.BodyLimit,
		RateLimit: httpadapter.RateLimit{RPS: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
	}
	if cfg.RedisAddr != "" && cfg.RateLimitRPS > 0 {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		opts.RateLimit.Redis = rdb
		logger.Info("rate limit counters shared through redis", "addr", cfg.RedisAddr)
	}

	handler := httpadapter.NewHandler(svc, quotes.NewEmbeddedStore(), logger)
	e := httpadapter.NewServer(handler, opts, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "provider", cfg.LLMProvider)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
