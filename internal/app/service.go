package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

// Service runs every reading against the configured generation backends.
type Service struct {
	text   ports.Source[ports.Provider]
	images ports.Source[ports.ImageGenerator]
	rng    domain.RNG
	strict bool
	logger *slog.Logger
}

// NewService wires the backends. With strict set, a model answer missing a
// required field is rejected instead of being passed on with zero values.
func NewService(text ports.Source[ports.Provider], images ports.Source[ports.ImageGenerator], rng domain.RNG, strict bool, logger *slog.Logger) *Service {
	return &Service{
		text:   text,
		images: images,
		rng:    rng,
		strict: strict,
		logger: logger,
	}
}

// generateStructured performs one schema-bound call. There is no retry.
func generateStructured[T any](ctx context.Context, s *Service, gen ports.TextGenerator, req ports.TextRequest, feature string) (T, error) {
	var out T
	raw, err := gen.GenerateText(ctx, req)
	if err != nil {
		return out, err
	}

	violations, err := schema.Decode([]byte(raw), req.Schema, &out, s.strict)
	if err != nil {
		return out, fmt.Errorf("%w: %w", domain.ErrInvalidLLMJSON, err)
	}
	if len(violations) > 0 {
		paths := make([]string, len(violations))
		for i, v := range violations {
			paths[i] = v.Path
		}
		s.logger.WarnContext(ctx, "model answer is missing required fields", "feature", feature, "paths", paths)
	}
	return out, nil
}
