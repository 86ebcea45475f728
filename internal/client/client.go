// Package client calls the tuvid HTTP API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

// Error is a failure already phrased for the user. Err keeps the cause.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

type Client struct {
	http *resty.Client
}

// New returns a client for the server at baseURL. There is no request
// timeout; cancel through the context.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		http: resty.NewWithClient(httpClient).
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json"),
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// post sends body and decodes a 2xx JSON answer into out.
func (c *Client) post(ctx context.Context, path string, lang domain.Lang, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	return decode(ctx, resp, err, lang, out)
}

func decode(ctx context.Context, resp *resty.Response, err error, lang domain.Lang, out any) error {
	msgs := i18n.For(lang)
	if err != nil {
		return transportError(ctx, err, lang)
	}
	if resp.IsError() {
		return statusError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Status: resp.StatusCode(), Message: msgs.Errors.Unknown, Err: err}
	}
	return nil
}

// transportError reports cancellation as is and anything else as the
// localized connection failure.
func transportError(ctx context.Context, err error, lang domain.Lang) error {
	if ctxErr := context.Cause(ctx); ctxErr != nil {
		return ctxErr
	}
	return &Error{Message: i18n.For(lang).Errors.Connect, Err: err}
}

// statusError prefers the server's own {error} sentence.
func statusError(status int, body []byte) *Error {
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
		return &Error{Status: status, Message: eb.Error}
	}
	return &Error{Status: status, Message: fmt.Sprintf("Server error: %d", status)}
}

func (c *Client) Horoscope(ctx context.Context, data domain.BirthData, lang domain.Lang) (domain.AnalysisResult, error) {
	var out domain.AnalysisResult
	err := c.post(ctx, "/api/horoscope", lang, map[string]any{"birthData": data, "lang": lang}, &out)
	return out, err
}

func (c *Client) Divination(ctx context.Context, lang domain.Lang) (domain.DivinationResult, error) {
	var out domain.DivinationResult
	err := c.post(ctx, "/api/divination", lang, map[string]any{"lang": lang}, &out)
	return out, err
}

func (c *Client) SelectDates(ctx context.Context, data domain.DateSelectionData, lang domain.Lang) ([]domain.AuspiciousDate, error) {
	var out domain.DateSelection
	err := c.post(ctx, "/api/date_selection", lang, map[string]any{"dateSelectionData": data, "lang": lang}, &out)
	return out.AuspiciousDates, err
}

func (c *Client) Talisman(ctx context.Context, data domain.TalismanRequest, lang domain.Lang) (domain.TalismanResult, error) {
	var out domain.TalismanResult
	err := c.post(ctx, "/api/talisman", lang, map[string]any{"talismanData": data, "lang": lang}, &out)
	return out, err
}

func (c *Client) Quotes(ctx context.Context, lang domain.Lang) ([]domain.Quote, error) {
	var out struct {
		Quotes []domain.Quote `json:"quotes"`
	}
	resp, err := c.http.R().SetContext(ctx).SetQueryParam("lang", lang.String()).Get("/api/quotes")
	if err := decode(ctx, resp, err, lang, &out); err != nil {
		return nil, err
	}
	return out.Quotes, nil
}

// ChatStream posts one chat turn and returns the raw reply body. The
// caller must close it.
func (c *Client) ChatStream(ctx context.Context, history []domain.ChatTurn, message string, lang domain.Lang) (io.ReadCloser, error) {
	if history == nil {
		history = []domain.ChatTurn{}
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"history": history, "message": message, "lang": lang}).
		SetDoNotParseResponse(true).
		Post("/api/chat")
	if err != nil {
		return nil, transportError(ctx, err, lang)
	}

	body := resp.RawBody()
	if body == nil {
		return nil, &Error{Status: resp.StatusCode(), Message: i18n.For(lang).Chat.Error}
	}
	if resp.IsError() {
		defer body.Close()
		b, _ := io.ReadAll(io.LimitReader(body, 1<<16))
		return nil, statusError(resp.StatusCode(), b)
	}
	return body, nil
}
