package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/app"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

const contentTypeText = "text/plain; charset=utf-8"

type Handler struct {
	svc    *app.Service
	quotes ports.QuoteStore
	logger *slog.Logger
}

func NewHandler(svc *app.Service, quotes ports.QuoteStore, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, quotes: quotes, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	api := e.Group("/api")
	api.POST("/horoscope", h.Horoscope)
	api.POST("/divination", h.Divination)
	api.POST("/date_selection", h.DateSelection)
	api.POST("/talisman", h.Talisman)
	api.POST("/chat", h.Chat)
	api.GET("/quotes", h.Quotes)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Horoscope(c echo.Context) error {
	var req HoroscopeRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}
	lang := domain.ParseLang(req.Lang)

	out, err := h.svc.Horoscope(c.Request().Context(), req.BirthData, lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.Horoscope)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Divination(c echo.Context) error {
	var req DivinationRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}
	lang := domain.ParseLang(req.Lang)

	out, err := h.svc.Divination(c.Request().Context(), lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.Divination)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) DateSelection(c echo.Context) error {
	var req DateSelectionRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}
	lang := domain.ParseLang(req.Lang)

	out, err := h.svc.SelectDates(c.Request().Context(), req.DateSelectionData, lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.DateSelection)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Talisman(c echo.Context) error {
	var req TalismanRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}
	lang := domain.ParseLang(req.Lang)

	out, err := h.svc.Talisman(c.Request().Context(), req.TalismanData, lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.Talisman)
	}
	return c.JSON(http.StatusOK, out)
}

// Chat streams the reply as plain UTF-8 text, flushing every chunk. Errors
// before the first byte, and replies with no text at all, become a JSON
// error; later ones end the body early.
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(c, err)
	}
	lang := domain.ParseLang(req.Lang)
	ctx := c.Request().Context()

	stream, err := h.svc.Chat(ctx, req.Message, req.History, lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.Generic)
	}
	defer stream.Close()

	// Hold the headers back until there is text to send.
	var first string
	for first == "" {
		first, err = stream.Recv()
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: chat reply was empty", domain.ErrUpstreamLLM)
		}
		if err != nil {
			return h.mapError(c, err, lang, i18n.For(lang).Errors.Generic)
		}
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, contentTypeText)
	res.WriteHeader(http.StatusOK)

	chunk := first
	for {
		if _, err := io.WriteString(res, chunk); err != nil {
			h.logger.WarnContext(ctx, "chat client went away", "request_id", c.Get("request_id"), "error", err)
			return nil
		}
		res.Flush()

		chunk, err = stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			h.logger.ErrorContext(ctx, "chat stream interrupted", "request_id", c.Get("request_id"), "error", err)
			return nil
		}
	}
}

func (h *Handler) Quotes(c echo.Context) error {
	lang := domain.ParseLang(c.QueryParam("lang"))
	list, err := h.quotes.Quotes(c.Request().Context(), lang)
	if err != nil {
		return h.mapError(c, err, lang, i18n.For(lang).Errors.Generic)
	}
	return c.JSON(http.StatusOK, QuotesResponse{Quotes: list})
}

func (h *Handler) badRequest(c echo.Context, err error) error {
	h.logger.InfoContext(c.Request().Context(), "bad request body", "request_id", c.Get("request_id"), "error", err)
	lang := domain.ParseLang(c.QueryParam("lang"))
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: i18n.For(lang).Errors.InvalidInput})
}

// mapError logs the cause and answers with a localized sentence only.
func (h *Handler) mapError(c echo.Context, err error, lang domain.Lang, featureMsg string) error {
	requestID, _ := c.Get("request_id").(string)
	ctx := c.Request().Context()
	msgs := i18n.For(lang)

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		h.logger.InfoContext(ctx, "invalid input", "request_id", requestID, "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgs.Errors.InvalidInput})
	case errors.Is(err, domain.ErrMissingCredential):
		h.logger.ErrorContext(ctx, "generation credential missing", "request_id", requestID)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgs.Errors.Config})
	case errors.Is(err, domain.ErrUpstreamLLM), errors.Is(err, domain.ErrInvalidLLMJSON), errors.Is(err, domain.ErrNoImage):
		h.logger.ErrorContext(ctx, "upstream LLM failure", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: featureMsg})
	default:
		h.logger.ErrorContext(ctx, "internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: featureMsg})
	}
}
