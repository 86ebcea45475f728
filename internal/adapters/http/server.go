package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ServerOptions holds the middleware knobs.
type ServerOptions struct {
	BodyLimit string
	RateLimit RateLimit
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(h *Handler, opts ServerOptions, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(logger))
	e.Use(middleware.Recover())
	if opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(opts.BodyLimit))
	}
	if rl := RateLimitMiddleware(opts.RateLimit, logger); rl != nil {
		e.Use(rl)
	}

	h.Register(e)
	return e
}
