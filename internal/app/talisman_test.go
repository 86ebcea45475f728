package app_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/app"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/prompt"
)

type mockImages struct {
	got []ports.ImageRequest
	img ports.Image
	err error
}

func (m *mockImages) GenerateImage(_ context.Context, req ports.ImageRequest) (ports.Image, error) {
	m.got = append(m.got, req)
	return m.img, m.err
}

const (
	profileJSON = `{"mainElement":"Mộc","compatibleColors":["xanh lá"],"compatibleSymbols":["rồng"],
		"zodiacProtector":"Văn Thù Bồ Tát","talismanStyle":"Triện Cổ","keySymbol":"Tỳ Hưu"}`
	textJSON    = `{"blessingText":"Vạn sự như ý","explanation":"Tỳ Hưu chiêu tài","instructions":"Đặt làm hình nền"}`
	genericJSON = `{"blessingText":"Bình an","explanation":"Đóa sen","instructions":"Lưu lại"}`
)

// talismanProvider answers each stage by the schema it asks for.
func talismanProvider(profileErr, genericErr error) *mockProvider {
	return &mockProvider{generate: func(req ports.TextRequest) (string, error) {
		switch {
		case req.Schema == prompt.ElementProfileSchema:
			if profileErr != nil {
				return "", profileErr
			}
			return profileJSON, nil
		case req.Quick:
			if genericErr != nil {
				return "", genericErr
			}
			return genericJSON, nil
		default:
			return textJSON, nil
		}
	}}
}

var wish = domain.TalismanRequest{Name: "Nguyễn An", BirthDate: "1995-03-12", Wish: "Tài Lộc Hanh Thông"}

func talismanService(p ports.Provider, img ports.ImageGenerator, logs *bytes.Buffer) *app.Service {
	return app.NewService(
		source[ports.Provider]{val: p},
		source[ports.ImageGenerator]{val: img},
		fixedRNG{}, false, slog.New(slog.NewJSONHandler(logs, nil)))
}

func TestTalisman_FullPipeline(t *testing.T) {
	png := []byte("png-bytes")
	p := talismanProvider(nil, nil)
	img := &mockImages{img: ports.Image{Data: png, MimeType: domain.MimePNG}}

	out, err := talismanService(p, img, &bytes.Buffer{}).Talisman(context.Background(), wish, domain.LangVI)
	require.NoError(t, err)
	require.Equal(t, base64.StdEncoding.EncodeToString(png), out.ImageData)
	require.Equal(t, domain.MimePNG, out.MimeType)
	require.Equal(t, "Vạn sự như ý", out.BlessingText)

	require.Len(t, img.got, 1)
	require.Contains(t, img.got[0].Prompt, "Triện Cổ")
	require.Equal(t, "9:16", img.got[0].AspectRatio)
	require.Contains(t, p.requests[1].Prompt, `"keySymbol":"Tỳ Hưu"`)
}

func TestTalisman_ProfileFailureIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	p := talismanProvider(domain.ErrUpstreamLLM, nil)
	img := &mockImages{img: ports.Image{Data: []byte("x")}}

	out, err := talismanService(p, img, &logs).Talisman(context.Background(), wish, domain.LangEN)
	require.NoError(t, err)
	require.Equal(t, domain.MimePNG, out.MimeType)
	require.NotContains(t, img.got[0].Prompt, "style")
	require.Contains(t, p.requests[1].Prompt, "details: null.")
	require.Contains(t, logs.String(), "pre-analysis failed")
}

func TestTalisman_BillingFallback(t *testing.T) {
	var logs bytes.Buffer
	p := talismanProvider(nil, nil)
	img := &mockImages{err: fmt.Errorf("%w: status 400: Imagen API is only accessible to Billed Users at this time.", domain.ErrUpstreamLLM)}

	out, err := talismanService(p, img, &logs).Talisman(context.Background(), wish, domain.LangVI)
	require.NoError(t, err)
	require.Equal(t, domain.MimeSVG, out.MimeType)
	require.Equal(t, "Bình an", out.BlessingText)

	svg, err := base64.StdEncoding.DecodeString(out.ImageData)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(svg, []byte("<svg")))
	require.Contains(t, logs.String(), "billing")
}

func TestTalisman_BillingFallbackWithStaticBlessing(t *testing.T) {
	p := talismanProvider(nil, errors.New("quota exhausted"))
	img := &mockImages{err: errors.New("only accessible to billed users")}

	out, err := talismanService(p, img, &bytes.Buffer{}).Talisman(context.Background(), wish, domain.LangEN)
	require.NoError(t, err)
	require.Equal(t, domain.MimeSVG, out.MimeType)
	require.Equal(t, i18n.For(domain.LangEN).Talisman.Fallback.BlessingText, out.BlessingText)
}

func TestTalisman_OtherImageErrorsPropagate(t *testing.T) {
	var logs bytes.Buffer
	img := &mockImages{err: fmt.Errorf("%w: status 429: billing quota exceeded", domain.ErrUpstreamLLM)}

	_, err := talismanService(talismanProvider(nil, nil), img, &logs).Talisman(context.Background(), wish, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrUpstreamLLM)
	require.Contains(t, logs.String(), "did not match the billing predicate")
}

func TestTalisman_NoImageIsHardFailure(t *testing.T) {
	img := &mockImages{img: ports.Image{}}
	_, err := talismanService(talismanProvider(nil, nil), img, &bytes.Buffer{}).Talisman(context.Background(), wish, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrNoImage)
}

func TestTalisman_RequiresName(t *testing.T) {
	in := wish
	in.Name = "  <i></i> "
	_, err := talismanService(talismanProvider(nil, nil), &mockImages{}, &bytes.Buffer{}).Talisman(context.Background(), in, domain.LangVI)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsBillingRestricted(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("Imagen API is only accessible to billed users at this time."), true},
		{errors.New("ONLY FOR BILLED USER"), true},
		{fmt.Errorf("wrap: %w", errors.New("billed user required")), true},
		{errors.New("billing account disabled"), false},
		{errors.New("connection reset"), false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, app.IsBillingRestricted(c.err), "%v", c.err)
	}
}

func TestFallbackImage(t *testing.T) {
	svg := string(app.FallbackImage(app.DefaultLotus))
	require.True(t, strings.HasPrefix(svg, `<svg width="900" height="1600"`))
	require.Equal(t, 8, strings.Count(svg, "<path "))
	require.Contains(t, svg, "rotate(315)")
	require.Contains(t, svg, "rgb(76, 29, 149)")
	require.Contains(t, svg, "#FCD34D")
	require.Contains(t, svg, ">Huyền Phong Phật Đạo</text>")

	custom := app.DefaultLotus
	custom.Petals = 6
	custom.Caption = "A & B"
	svg = string(app.FallbackImage(custom))
	require.Equal(t, 6, strings.Count(svg, "<path "))
	require.Contains(t, svg, "rotate(300)")
	require.Contains(t, svg, "A &amp; B")
}
