package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/prompt"
)

// billingMarker is what the image API says when the account may not use it.
const billingMarker = "billed user"

// driftMarkers are words that suggest a billing refusal phrased differently.
var driftMarkers = []string{"billing", "billed", "quota", "entitlement", "payment"}

// IsBillingRestricted reports whether err is the image provider refusing
// the account for billing reasons.
func IsBillingRestricted(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), billingMarker)
}

// looksLikeBillingDrift flags errors IsBillingRestricted misses but that
// read like the same refusal.
func looksLikeBillingDrift(err error) bool {
	if err == nil || IsBillingRestricted(err) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range driftMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// Talisman runs profile, artwork and text stages in order. A billing
// refusal at the artwork stage degrades to the lotus placeholder; every
// other failure is returned.
func (s *Service) Talisman(ctx context.Context, in domain.TalismanRequest, lang domain.Lang) (domain.TalismanResult, error) {
	in = in.Sanitized()
	if err := in.Validate(); err != nil {
		return domain.TalismanResult{}, err
	}
	gen, err := s.text.Get()
	if err != nil {
		return domain.TalismanResult{}, err
	}
	images, err := s.images.Get()
	if err != nil {
		return domain.TalismanResult{}, err
	}

	var profile *domain.ElementProfile
	p, err := generateStructured[domain.ElementProfile](ctx, s, gen, prompt.TalismanProfile(in, lang), "talisman_profile")
	if err != nil {
		s.logger.WarnContext(ctx, "talisman pre-analysis failed, continuing without profile", "error", err)
	} else {
		profile = &p
	}

	img, err := images.GenerateImage(ctx, prompt.TalismanImage(in, profile, lang))
	if err != nil {
		if IsBillingRestricted(err) {
			s.logger.WarnContext(ctx, "image generation refused for billing, using placeholder", "error", err)
			return s.placeholderTalisman(ctx, gen, in, lang), nil
		}
		if looksLikeBillingDrift(err) {
			s.logger.WarnContext(ctx, "image error mentions billing but did not match the billing predicate", "error", err)
		}
		return domain.TalismanResult{}, fmt.Errorf("talisman image: %w", err)
	}
	if len(img.Data) == 0 {
		return domain.TalismanResult{}, fmt.Errorf("talisman image: %w", domain.ErrNoImage)
	}

	text, err := generateStructured[domain.TalismanText](ctx, s, gen, prompt.TalismanText(in, profile, lang), "talisman_text")
	if err != nil {
		return domain.TalismanResult{}, fmt.Errorf("talisman text: %w", err)
	}

	mime := img.MimeType
	if mime == "" {
		mime = domain.MimePNG
	}
	return domain.TalismanResult{
		ImageData:    base64.StdEncoding.EncodeToString(img.Data),
		MimeType:     mime,
		BlessingText: text.BlessingText,
		Explanation:  text.Explanation,
		Instructions: text.Instructions,
	}, nil
}

// placeholderTalisman pairs the lotus artwork with a generic blessing,
// or the static one when even that call fails.
func (s *Service) placeholderTalisman(ctx context.Context, gen ports.TextGenerator, in domain.TalismanRequest, lang domain.Lang) domain.TalismanResult {
	text, err := generateStructured[domain.TalismanText](ctx, s, gen, prompt.GenericBlessing(in, lang), "talisman_generic")
	if err != nil || text.BlessingText == "" {
		s.logger.WarnContext(ctx, "generic blessing failed, using static text", "error", err)
		text = i18n.For(lang).Talisman.Fallback
	}
	return domain.TalismanResult{
		ImageData:    base64.StdEncoding.EncodeToString(FallbackImage(DefaultLotus)),
		MimeType:     domain.MimeSVG,
		BlessingText: text.BlessingText,
		Explanation:  text.Explanation,
		Instructions: text.Instructions,
	}
}
