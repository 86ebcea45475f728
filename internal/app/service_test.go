package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/app"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

type source[T any] struct {
	val T
	err error
}

func (s source[T]) Get() (T, error) { return s.val, s.err }

type mockProvider struct {
	mu       sync.Mutex
	requests []ports.TextRequest
	generate func(req ports.TextRequest) (string, error)

	chatReq ports.ChatRequest
	chunks  []string
	chatErr error
}

func (m *mockProvider) GenerateText(_ context.Context, req ports.TextRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	return m.generate(req)
}

func (m *mockProvider) StreamChat(_ context.Context, req ports.ChatRequest) (ports.TextStream, error) {
	m.chatReq = req
	if m.chatErr != nil {
		return nil, m.chatErr
	}
	return &sliceStream{chunks: m.chunks}, nil
}

type sliceStream struct {
	chunks []string
	closed bool
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		return "", io.EOF
	}
	c := s.chunks[0]
	s.chunks = s.chunks[1:]
	return c, nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}

func reply(s string) func(ports.TextRequest) (string, error) {
	return func(ports.TextRequest) (string, error) { return s, nil }
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func newService(p ports.Provider, strict bool) *app.Service {
	return app.NewService(
		source[ports.Provider]{val: p},
		source[ports.ImageGenerator]{err: domain.ErrMissingCredential},
		fixedRNG{val: 41}, strict, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const horoscopeJSON = `{
 "chartSummary":{"mainElement":"Mệnh Kim","zodiacAnimal":"Tuổi Ngọ","westernZodiac":"Kim Ngưu","destinyPalace":"Cung Mệnh tại Dần"},
 "lifetimeAnalysis":{"overview":"o","career":"c","wealth":"w","loveAndMarriage":"l","health":"h","family":"f","synthesis":"s",
   "keyPeriods":{"youth":"y","middleAge":"m","oldAge":"o"}},
 "luckyAdvice":{"luckyNumbers":[6,8],"luckyColors":["trắng"],"compatibleZodiacs":["Dần"],"thingsToDo":"- a","thingsToAvoid":"- b"}}`

var birth = domain.BirthData{Date: "1990-05-15", Time: "08:30", Gender: domain.Male}

func TestHoroscope_Success(t *testing.T) {
	p := &mockProvider{generate: reply(horoscopeJSON)}
	out, err := newService(p, true).Horoscope(context.Background(), birth, domain.LangVI)
	require.NoError(t, err)
	require.Equal(t, "Mệnh Kim", out.ChartSummary.MainElement)
	require.Equal(t, []float64{6, 8}, out.LuckyAdvice.LuckyNumbers)
	require.Len(t, p.requests, 1)
	require.Contains(t, p.requests[0].Prompt, "1990-05-15")
}

func TestHoroscope_InvalidInputNeverCallsProvider(t *testing.T) {
	p := &mockProvider{generate: reply(horoscopeJSON)}
	_, err := newService(p, false).Horoscope(context.Background(), domain.BirthData{Date: "15/05/1990"}, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.Empty(t, p.requests)
}

func TestHoroscope_MissingCredential(t *testing.T) {
	svc := app.NewService(
		source[ports.Provider]{err: domain.ErrMissingCredential},
		source[ports.ImageGenerator]{err: domain.ErrMissingCredential},
		fixedRNG{}, false, slog.Default())
	_, err := svc.Horoscope(context.Background(), birth, domain.LangEN)
	require.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestHoroscope_MalformedJSONIsNotRetried(t *testing.T) {
	p := &mockProvider{generate: reply("the stars are silent")}
	_, err := newService(p, false).Horoscope(context.Background(), birth, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidLLMJSON)
	require.Len(t, p.requests, 1)
}

func TestHoroscope_UpstreamFailure(t *testing.T) {
	p := &mockProvider{generate: func(ports.TextRequest) (string, error) {
		return "", domain.ErrUpstreamLLM
	}}
	_, err := newService(p, false).Horoscope(context.Background(), birth, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrUpstreamLLM)
}

func TestHoroscope_MissingFieldDependsOnStrictness(t *testing.T) {
	partial := strings.Replace(horoscopeJSON, `"family":"f",`, "", 1)

	out, err := newService(&mockProvider{generate: reply(partial)}, false).Horoscope(context.Background(), birth, domain.LangVI)
	require.NoError(t, err)
	require.Empty(t, out.LifetimeAnalysis.Family)

	_, err = newService(&mockProvider{generate: reply(partial)}, true).Horoscope(context.Background(), birth, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidLLMJSON)
}

func TestDivination_DrawnStickWins(t *testing.T) {
	p := &mockProvider{generate: reply(`{"stickNumber":7,"name":"Thượng Cát","poem":"p","advice":"a",
		"interpretation":{"overview":"o","career":"c","love":"l","health":"h"}}`)}
	out, err := newService(p, false).Divination(context.Background(), domain.LangVI)
	require.NoError(t, err)
	require.Equal(t, 42, out.StickNumber)
	require.Contains(t, p.requests[0].Prompt, "42")
}

func TestSelectDates_KeepsRawScores(t *testing.T) {
	p := &mockProvider{generate: reply(`{"auspiciousDates":[{"gregorianDate":"2026-03-05","lunarDate":"l","dayOfWeek":"d",
		"goodHours":"g","explanation":"e","conflictingZodiacs":[],"suitabilityScore":130,"auspiciousStars":[],"inauspiciousStars":[]}]}`)}
	out, err := newService(p, false).SelectDates(context.Background(), domain.DateSelectionData{
		EventType: "<b>Khai Trương</b>", BirthDate: "1988-08-08", TargetMonth: 3, TargetYear: 2026,
	}, domain.LangVI)
	require.NoError(t, err)
	require.Equal(t, 130.0, out.AuspiciousDates[0].SuitabilityScore)
	require.Equal(t, 100, domain.ClampScore(out.AuspiciousDates[0].SuitabilityScore))
	require.Contains(t, p.requests[0].Prompt, `"Khai Trương"`)
}

func TestSelectDates_EmptyListIsNotNil(t *testing.T) {
	p := &mockProvider{generate: reply(`{"auspiciousDates":null}`)}
	out, err := newService(p, false).SelectDates(context.Background(), domain.DateSelectionData{
		EventType: "travel", BirthDate: "1988-08-08", TargetMonth: 3, TargetYear: 2026,
	}, domain.LangEN)
	require.NoError(t, err)
	require.NotNil(t, out.AuspiciousDates)
	require.Empty(t, out.AuspiciousDates)
}

func TestChat_StreamsWithPersona(t *testing.T) {
	p := &mockProvider{chunks: []string{"A Di ", "Đà Phật"}}
	history := []domain.ChatTurn{
		{Role: domain.RoleUser, Parts: []domain.ChatPart{{Text: "chào"}}},
		{Role: domain.RoleModel, Parts: []domain.ChatPart{{Text: "chào thí chủ"}}},
	}
	s, err := newService(p, false).Chat(context.Background(), "hướng nhà?", history, domain.LangVI)
	require.NoError(t, err)

	var got bytes.Buffer
	for {
		c, err := s.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got.WriteString(c)
	}
	require.Equal(t, "A Di Đà Phật", got.String())
	require.Equal(t, history, p.chatReq.History)
	require.Contains(t, p.chatReq.System, "Thiện Giác")
}

func TestChat_Validation(t *testing.T) {
	p := &mockProvider{}
	_, err := newService(p, false).Chat(context.Background(), "   ", nil, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = newService(p, false).Chat(context.Background(), "hi",
		[]domain.ChatTurn{{Role: "system"}}, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChat_UpstreamRejects(t *testing.T) {
	p := &mockProvider{chatErr: domain.ErrUpstreamLLM}
	_, err := newService(p, false).Chat(context.Background(), "hi", nil, domain.LangEN)
	require.ErrorIs(t, err, domain.ErrUpstreamLLM)
}
