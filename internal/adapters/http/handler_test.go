package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/http"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/quotes"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/app"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

type source[T any] struct {
	val T
	err error
}

func (s source[T]) Get() (T, error) { return s.val, s.err }

type fakeProvider struct {
	text    string
	err     error
	chunks  []string
	chatErr error
	// recvErr ends the stream instead of io.EOF.
	recvErr error
}

func (f *fakeProvider) GenerateText(context.Context, ports.TextRequest) (string, error) {
	return f.text, f.err
}

func (f *fakeProvider) StreamChat(context.Context, ports.ChatRequest) (ports.TextStream, error) {
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return &chunkStream{chunks: f.chunks, end: f.recvErr}, nil
}

type chunkStream struct {
	chunks []string
	end    error
}

func (s *chunkStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		if s.end != nil {
			return "", s.end
		}
		return "", io.EOF
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *chunkStream) Close() error { return nil }

type fakeImages struct{ err error }

func (f fakeImages) GenerateImage(context.Context, ports.ImageRequest) (ports.Image, error) {
	return ports.Image{}, f.err
}

type zeroRNG struct{}

func (zeroRNG) Intn(int) int { return 0 }

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newServer(text ports.Source[ports.Provider], images ports.Source[ports.ImageGenerator], opts httpadapter.ServerOptions) http.Handler {
	svc := app.NewService(text, images, zeroRNG{}, false, discard)
	h := httpadapter.NewHandler(svc, quotes.NewEmbeddedStore(), discard)
	return httpadapter.NewServer(h, opts, discard)
}

func withProvider(p ports.Provider) http.Handler {
	return newServer(source[ports.Provider]{val: p}, source[ports.ImageGenerator]{err: domain.ErrMissingCredential}, httpadapter.ServerOptions{})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

const horoscopeJSON = `{"chartSummary":{"mainElement":"Mệnh Thổ","zodiacAnimal":"Tuổi Ngọ","westernZodiac":"Ma Kết","destinyPalace":"Tý"},
 "lifetimeAnalysis":{"overview":"o","career":"c","wealth":"w","loveAndMarriage":"l","health":"h","family":"f","synthesis":"s",
 "keyPeriods":{"youth":"y","middleAge":"m","oldAge":"o"}},
 "luckyAdvice":{"luckyNumbers":[2,5],"luckyColors":["vàng"],"compatibleZodiacs":["Dần"],"thingsToDo":"a","thingsToAvoid":"b"}}`

func TestHoroscope_Success(t *testing.T) {
	h := withProvider(&fakeProvider{text: horoscopeJSON})
	rec := do(t, h, http.MethodPost, "/api/horoscope",
		`{"birthData":{"date":"1990-01-01","time":"12:00","gender":"male"},"lang":"vi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "chartSummary")
	require.Contains(t, body, "lifetimeAnalysis")
	require.Contains(t, body, "luckyAdvice")
}

func TestHoroscope_InvalidInput(t *testing.T) {
	h := withProvider(&fakeProvider{text: horoscopeJSON})
	rec := do(t, h, http.MethodPost, "/api/horoscope", `{"birthData":{"date":"yesterday"},"lang":"en"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.InvalidInput, errorBody(t, rec))
}

func TestMissingCredential_LocalizedConfigError(t *testing.T) {
	h := newServer(source[ports.Provider]{err: domain.ErrMissingCredential},
		source[ports.ImageGenerator]{err: domain.ErrMissingCredential}, httpadapter.ServerOptions{})

	rec := do(t, h, http.MethodPost, "/api/divination", `{"lang":"en"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.Config, errorBody(t, rec))

	rec = do(t, h, http.MethodPost, "/api/divination", `{}`)
	require.Equal(t, i18n.For(domain.LangVI).Errors.Config, errorBody(t, rec))
}

func TestUpstreamFailure_FeatureMessage(t *testing.T) {
	h := withProvider(&fakeProvider{err: domain.ErrUpstreamLLM})
	rec := do(t, h, http.MethodPost, "/api/date_selection",
		`{"dateSelectionData":{"eventType":"Cưới Hỏi","birthDate":"1992-02-02","targetMonth":5,"targetYear":2026},"lang":"vi"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangVI).Errors.DateSelection, errorBody(t, rec))
}

func TestWrongMethod_Returns405(t *testing.T) {
	h := withProvider(&fakeProvider{})
	for _, path := range []string{"/api/horoscope", "/api/divination", "/api/date_selection", "/api/talisman", "/api/chat"} {
		rec := do(t, h, http.MethodGet, path, "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
		require.Equal(t, i18n.For(domain.LangVI).Errors.MethodNotAllowed, errorBody(t, rec))
	}
}

func TestChat_StreamsPlainText(t *testing.T) {
	h := withProvider(&fakeProvider{chunks: []string{"Nam Mô ", "A Di ", "Đà Phật"}})
	rec := do(t, h, http.MethodPost, "/api/chat",
		`{"history":[{"role":"user","parts":[{"text":"chào"}]},{"role":"model","parts":[{"text":"chào"}]}],"message":"?","lang":"vi"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Equal(t, "Nam Mô A Di Đà Phật", rec.Body.String())
	require.True(t, rec.Flushed)
}

func TestChat_RejectedBeforeStreaming(t *testing.T) {
	h := withProvider(&fakeProvider{chatErr: domain.ErrUpstreamLLM})
	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi","lang":"en"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.Generic, errorBody(t, rec))
}

func TestChat_FirstReadFailureIsJSONError(t *testing.T) {
	h := withProvider(&fakeProvider{recvErr: fmt.Errorf("%w: blocked", domain.ErrUpstreamLLM)})
	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi","lang":"en"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.Generic, errorBody(t, rec))
}

func TestChat_EmptyReplyIsJSONError(t *testing.T) {
	h := withProvider(&fakeProvider{chunks: []string{"", ""}})
	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi","lang":"vi"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangVI).Errors.Generic, errorBody(t, rec))
}

func TestChat_LaterFailureEndsBodyEarly(t *testing.T) {
	h := withProvider(&fakeProvider{chunks: []string{"Nam Mô "}, recvErr: domain.ErrUpstreamLLM})
	rec := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi","lang":"vi"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Nam Mô ", rec.Body.String())
}

func TestBadBodyUsesQueryLang(t *testing.T) {
	h := withProvider(&fakeProvider{})
	rec := do(t, h, http.MethodPost, "/api/horoscope?lang=en", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.InvalidInput, errorBody(t, rec))

	rec = do(t, h, http.MethodPost, "/api/horoscope", `{not json`)
	require.Equal(t, i18n.For(domain.LangVI).Errors.InvalidInput, errorBody(t, rec))
}

func TestTalisman_BillingFallback(t *testing.T) {
	p := &fakeProvider{text: `{"blessingText":"b","explanation":"e","instructions":"i"}`}
	h := newServer(source[ports.Provider]{val: p},
		source[ports.ImageGenerator]{val: fakeImages{err: domain.ErrUpstreamLLM}}, httpadapter.ServerOptions{})
	rec := do(t, h, http.MethodPost, "/api/talisman",
		`{"talismanData":{"name":"An","birthDate":"1999-09-09","wish":"Bình An"},"lang":"vi"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, i18n.For(domain.LangVI).Errors.Talisman, errorBody(t, rec))

	h = newServer(source[ports.Provider]{val: p},
		source[ports.ImageGenerator]{val: fakeImages{err: io.ErrUnexpectedEOF}}, httpadapter.ServerOptions{})
	rec = do(t, h, http.MethodPost, "/api/talisman",
		`{"talismanData":{"name":"An","birthDate":"1999-09-09","wish":"Bình An"}}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	billing := fakeImages{err: errorString("Imagen API is only accessible to billed users at this time.")}
	h = newServer(source[ports.Provider]{val: p}, source[ports.ImageGenerator]{val: billing}, httpadapter.ServerOptions{})
	rec = do(t, h, http.MethodPost, "/api/talisman",
		`{"talismanData":{"name":"An","birthDate":"1999-09-09","wish":"Bình An"},"lang":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out domain.TalismanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, domain.MimeSVG, out.MimeType)
	require.NotEmpty(t, out.ImageData)
	require.NotEmpty(t, out.BlessingText)
}

type errorString string

func (e errorString) Error() string { return string(e) }

func TestQuotes(t *testing.T) {
	h := withProvider(&fakeProvider{})
	rec := do(t, h, http.MethodGet, "/api/quotes?lang=en", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out httpadapter.QuotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Quotes)
	require.Equal(t, "Law of Karma", out.Quotes[0].Author)
}

func TestHealthz(t *testing.T) {
	rec := do(t, withProvider(&fakeProvider{}), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	withProvider(&fakeProvider{}).ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestRateLimit(t *testing.T) {
	h := newServer(source[ports.Provider]{val: &fakeProvider{}}, source[ports.ImageGenerator]{},
		httpadapter.ServerOptions{RateLimit: httpadapter.RateLimit{RPS: 0.001, Burst: 1}})

	rec := do(t, h, http.MethodGet, "/api/quotes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/quotes?lang=en", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, i18n.For(domain.LangEN).Errors.RateLimited, errorBody(t, rec))

	rec = do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	h := newServer(source[ports.Provider]{val: &fakeProvider{}}, source[ports.ImageGenerator]{},
		httpadapter.ServerOptions{BodyLimit: "1K"})
	big := `{"message":"` + strings.Repeat("a", 4096) + `"}`
	rec := do(t, h, http.MethodPost, "/api/chat", big)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Equal(t, i18n.For(domain.LangVI).Errors.InvalidInput, errorBody(t, rec))
}

func TestRedisStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	store := httpadapter.NewRedisStore(client, 1, time.Minute, discard)
	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	require.True(t, allowed)
}
