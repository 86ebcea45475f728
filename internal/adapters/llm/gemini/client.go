// Package gemini talks to the Generative Language REST API: structured
// text, streamed chat and Imagen artwork.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements ports.Provider and ports.ImageGenerator.
type Client struct {
	http       *resty.Client
	textModel  string
	imageModel string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient builds a client. The timeout bounds unary calls only; streams
// live as long as their context.
func NewClient(httpClient *http.Client, apiKey, baseURL, textModel, imageModel string, timeout time.Duration, logger *slog.Logger) *Client {
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("x-goog-api-key", apiKey).
		SetHeader("Content-Type", "application/json")
	return &Client{
		http:       rc,
		textModel:  textModel,
		imageModel: imageModel,
		timeout:    timeout,
		logger:     logger,
	}
}

type part struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema.Schema  `json:"responseSchema,omitempty"`
	Temperature      *float32        `json:"temperature,omitempty"`
	ThinkingConfig   *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// text joins the non-thought parts of the first candidate.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		if !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func systemContent(system string) *content {
	if system == "" {
		return nil
	}
	return &content{Parts: []part{{Text: system}}}
}

func (c *Client) GenerateText(ctx context.Context, in ports.TextRequest) (string, error) {
	cfg := &generationConfig{Temperature: in.Temperature}
	if in.Schema != nil {
		cfg.ResponseMimeType = "application/json"
		cfg.ResponseSchema = in.Schema
	}
	if in.Quick {
		cfg.ThinkingConfig = &thinkingConfig{ThinkingBudget: 0}
	}
	body := generateRequest{
		Contents:          []content{{Role: string(domain.RoleUser), Parts: []part{{Text: in.Prompt}}}},
		SystemInstruction: systemContent(in.System),
		GenerationConfig:  cfg,
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	var out generateResponse
	if err := c.post(ctx, c.textModel+":generateContent", body, &out); err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.text())
	if text == "" {
		reason := "no candidates"
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			reason = "blocked: " + out.PromptFeedback.BlockReason
		} else if len(out.Candidates) > 0 {
			reason = "finish reason " + out.Candidates[0].FinishReason
		}
		return "", fmt.Errorf("%w: empty response (%s)", domain.ErrUpstreamLLM, reason)
	}
	c.logger.DebugContext(ctx, "text generated", "model", c.textModel, "bytes", len(text))
	return text, nil
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded []byte `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

func (c *Client) GenerateImage(ctx context.Context, in ports.ImageRequest) (ports.Image, error) {
	body := predictRequest{
		Instances: []predictInstance{{Prompt: in.Prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			AspectRatio:    in.AspectRatio,
			OutputMimeType: in.MimeType,
		},
	}

	ctx, cancel := c.bound(ctx)
	defer cancel()

	var out predictResponse
	if err := c.post(ctx, c.imageModel+":predict", body, &out); err != nil {
		return ports.Image{}, err
	}
	if len(out.Predictions) == 0 || len(out.Predictions[0].BytesBase64Encoded) == 0 {
		return ports.Image{}, domain.ErrNoImage
	}

	mime := out.Predictions[0].MimeType
	if mime == "" {
		mime = in.MimeType
	}
	return ports.Image{Data: out.Predictions[0].BytesBase64Encoded, MimeType: mime}, nil
}

func (c *Client) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// post sends body to models/{method} and decodes a 2xx reply into out.
func (c *Client) post(ctx context.Context, method string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/models/" + method)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	if resp.IsError() {
		return upstreamError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrUpstreamLLM, err)
	}
	return nil
}

// upstreamError keeps the provider's own message; callers match on it.
func upstreamError(status int, body []byte) error {
	var e apiError
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &e) == nil && e.Error.Message != "" {
		msg = e.Error.Message
	}
	return fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamLLM, status, msg)
}
