package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/llm"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/llm/compat"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/adapters/llm/gemini"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/config"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

// newProviders returns lazily built handles. Nothing is constructed until
// the first request, and a missing credential fails every Get.
func newProviders(cfg config.Config, logger *slog.Logger) (*llm.Lazy[ports.Provider], *llm.Lazy[ports.ImageGenerator]) {
	// Streams outlive any fixed client timeout; unary calls are bounded
	// per request instead.
	httpClient := &http.Client{}

	newGemini := func() (*gemini.Client, error) {
		if cfg.GeminiAPIKey == "" {
			return nil, domain.ErrMissingCredential
		}
		return gemini.NewClient(httpClient, cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.TextModel, cfg.ImageModel, cfg.LLMTimeout, logger), nil
	}

	text := llm.NewLazy(func() (ports.Provider, error) {
		if cfg.MissingCredential() != "" {
			return nil, domain.ErrMissingCredential
		}
		var (
			p   ports.Provider
			err error
		)
		switch cfg.LLMProvider {
		case config.ProviderOpenAI:
			p, err = compat.NewOpenAI(context.Background(), cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
		case config.ProviderDeepSeek:
			p, err = compat.NewDeepSeek(context.Background(), cfg.DeepSeekAPIKey, "", cfg.DeepSeekModel, logger)
		default:
			p, err = newGemini()
		}
		if err != nil {
			logger.Error("build text provider", "provider", cfg.LLMProvider, "error", err)
			return nil, err
		}
		return p, nil
	})

	images := llm.NewLazy(func() (ports.ImageGenerator, error) {
		g, err := newGemini()
		if err != nil {
			return nil, err
		}
		return g, nil
	})

	return text, images
}
