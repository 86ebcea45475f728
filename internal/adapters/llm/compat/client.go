// Package compat serves text and chat through eino chat models, covering
// OpenAI-compatible endpoints (OpenRouter, vLLM, ...) and DeepSeek.
package compat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	einoschema "github.com/cloudwego/eino/schema"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

const maxTokens = 8192

// Client implements ports.Provider on top of any eino chat model.
type Client struct {
	model  model.BaseChatModel
	name   string
	logger *slog.Logger
}

func New(m model.BaseChatModel, name string, logger *slog.Logger) *Client {
	return &Client{model: m, name: name, logger: logger}
}

// NewOpenAI targets an OpenAI-compatible /chat/completions endpoint.
func NewOpenAI(ctx context.Context, apiKey, baseURL, modelName string, logger *slog.Logger) (*Client, error) {
	tokens := maxTokens
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     modelName,
		MaxTokens: &tokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat model: %w", err)
	}
	return New(cm, modelName, logger), nil
}

func NewDeepSeek(ctx context.Context, apiKey, baseURL, modelName string, logger *slog.Logger) (*Client, error) {
	cm, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     modelName,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("deepseek chat model: %w", err)
	}
	return New(cm, modelName, logger), nil
}

func (c *Client) GenerateText(ctx context.Context, in ports.TextRequest) (string, error) {
	var msgs []*einoschema.Message
	if sys := systemPrompt(in); sys != "" {
		msgs = append(msgs, einoschema.SystemMessage(sys))
	}
	msgs = append(msgs, einoschema.UserMessage(in.Prompt))
	var opts []model.Option
	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}

	msg, err := c.model.Generate(ctx, msgs, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	text := strings.TrimSpace(msg.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", domain.ErrUpstreamLLM)
	}
	c.logger.DebugContext(ctx, "text generated", "model", c.name, "bytes", len(text))
	return text, nil
}

// systemPrompt folds the response schema into the instruction; these
// endpoints have no portable structured-output switch.
func systemPrompt(in ports.TextRequest) string {
	if in.Schema == nil {
		return in.System
	}
	var b strings.Builder
	if in.System != "" {
		b.WriteString(in.System)
		b.WriteString("\n\n")
	}
	b.WriteString("Respond with ONLY a JSON object (no markdown, no code fences, no extra text) matching this schema:\n")
	b.WriteString(in.Schema.JSON())
	return b.String()
}

func (c *Client) StreamChat(ctx context.Context, in ports.ChatRequest) (ports.TextStream, error) {
	msgs := make([]*einoschema.Message, 0, len(in.History)+2)
	if in.System != "" {
		msgs = append(msgs, einoschema.SystemMessage(in.System))
	}
	for _, turn := range in.History {
		if turn.Role == domain.RoleModel {
			msgs = append(msgs, einoschema.AssistantMessage(turn.Text(), nil))
		} else {
			msgs = append(msgs, einoschema.UserMessage(turn.Text()))
		}
	}
	msgs = append(msgs, einoschema.UserMessage(in.Message))

	sr, err := c.model.Stream(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	return &stream{sr: sr}, nil
}

type stream struct {
	sr *einoschema.StreamReader[*einoschema.Message]
}

func (s *stream) Recv() (string, error) {
	for {
		msg, err := s.sr.Recv()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
		}
		if msg != nil && msg.Content != "" {
			return msg.Content, nil
		}
	}
}

func (s *stream) Close() error {
	s.sr.Close()
	return nil
}
