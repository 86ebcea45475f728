package app

import (
	"context"
	"fmt"
	"time"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/prompt"
)

func (s *Service) Horoscope(ctx context.Context, data domain.BirthData, lang domain.Lang) (domain.AnalysisResult, error) {
	if err := data.Validate(); err != nil {
		return domain.AnalysisResult{}, err
	}
	gen, err := s.text.Get()
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	start := time.Now()
	out, err := generateStructured[domain.AnalysisResult](ctx, s, gen, prompt.Horoscope(data, lang), "horoscope")
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("horoscope: %w", err)
	}
	s.logger.InfoContext(ctx, "horoscope generated", "lang", lang, "latency_ms", time.Since(start).Milliseconds())
	return out, nil
}

// Divination draws a stick locally and asks the model to interpret it. The
// drawn number wins over whatever number the model echoes back.
func (s *Service) Divination(ctx context.Context, lang domain.Lang) (domain.DivinationResult, error) {
	gen, err := s.text.Get()
	if err != nil {
		return domain.DivinationResult{}, err
	}

	stick := domain.DrawStick(s.rng)
	out, err := generateStructured[domain.DivinationResult](ctx, s, gen, prompt.Divination(stick, lang), "divination")
	if err != nil {
		return domain.DivinationResult{}, fmt.Errorf("divination: %w", err)
	}
	if out.StickNumber != stick {
		s.logger.DebugContext(ctx, "model echoed a different stick", "drawn", stick, "echoed", out.StickNumber)
		out.StickNumber = stick
	}
	return out, nil
}

// SelectDates returns the candidate days exactly as generated; scores are
// clamped only for display.
func (s *Service) SelectDates(ctx context.Context, data domain.DateSelectionData, lang domain.Lang) (domain.DateSelection, error) {
	data = data.Sanitized()
	if err := data.Validate(); err != nil {
		return domain.DateSelection{}, err
	}
	gen, err := s.text.Get()
	if err != nil {
		return domain.DateSelection{}, err
	}

	out, err := generateStructured[domain.DateSelection](ctx, s, gen, prompt.DateSelection(data, lang), "date_selection")
	if err != nil {
		return domain.DateSelection{}, fmt.Errorf("date selection: %w", err)
	}
	if out.AuspiciousDates == nil {
		out.AuspiciousDates = []domain.AuspiciousDate{}
	}
	return out, nil
}
