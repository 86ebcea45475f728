package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
)

const maxEventSize = 1 << 20

func (c *Client) StreamChat(ctx context.Context, in ports.ChatRequest) (ports.TextStream, error) {
	contents := make([]content, 0, len(in.History)+1)
	for _, turn := range in.History {
		parts := make([]part, len(turn.Parts))
		for i, p := range turn.Parts {
			parts[i] = part{Text: p.Text}
		}
		contents = append(contents, content{Role: string(turn.Role), Parts: parts})
	}
	contents = append(contents, content{Role: string(domain.RoleUser), Parts: []part{{Text: in.Message}}})

	body := generateRequest{
		Contents:          contents,
		SystemInstruction: systemContent(in.System),
		GenerationConfig:  &generationConfig{ThinkingConfig: &thinkingConfig{ThinkingBudget: 0}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetQueryParam("alt", "sse").
		SetDoNotParseResponse(true).
		Post("/models/" + c.textModel + ":streamGenerateContent")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}
	raw := resp.RawBody()
	if resp.IsError() {
		defer raw.Close()
		b, _ := io.ReadAll(io.LimitReader(raw, maxEventSize))
		return nil, upstreamError(resp.StatusCode(), b)
	}

	sc := bufio.NewScanner(raw)
	sc.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	return &sseStream{body: raw, scanner: sc}, nil
}

// sseStream reads server-sent events and yields the text of each
// GenerateContentResponse chunk.
type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

var dataPrefix = []byte("data:")

func (s *sseStream) Recv() (string, error) {
	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if !bytes.HasPrefix(line, dataPrefix) {
			continue
		}
		payload := bytes.TrimSpace(bytes.TrimPrefix(line, dataPrefix))
		if len(payload) == 0 {
			continue
		}

		var chunk struct {
			generateResponse
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(payload, &chunk); err != nil {
			return "", fmt.Errorf("%w: decode stream chunk: %w", domain.ErrUpstreamLLM, err)
		}
		if chunk.Error != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrUpstreamLLM, chunk.Error.Message)
		}
		if text := chunk.text(); text != "" {
			return text, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: read stream: %w", domain.ErrUpstreamLLM, err)
	}
	return "", io.EOF
}

func (s *sseStream) Close() error { return s.body.Close() }
