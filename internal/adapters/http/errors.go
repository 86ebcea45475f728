package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

// ErrorHandler renders every framework error (unknown route, wrong method,
// rate limit, oversized body, panic) as a localized {error} body.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		msgs := i18n.For(domain.ParseLang(c.QueryParam("lang")))
		var msg string
		switch status {
		case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
			msg = msgs.Errors.InvalidInput
		case http.StatusMethodNotAllowed:
			msg = msgs.Errors.MethodNotAllowed
		case http.StatusTooManyRequests:
			msg = msgs.Errors.RateLimited
		case http.StatusNotFound:
			msg = http.StatusText(status)
		default:
			msg = msgs.Errors.Server
			logger.Error("unhandled error", "request_id", c.Get("request_id"), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Error: msg})
		}
		if err != nil {
			logger.Error("write error response", "error", err)
		}
	}
}
