package ports

import (
	"context"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/schema"
)

// TextRequest is one single-shot generation call. When Schema is set the
// provider is asked for JSON of that shape.
type TextRequest struct {
	Prompt      string
	System      string
	Schema      *schema.Schema
	Temperature *float32
	// Quick disables extended reasoning where the provider supports it.
	Quick bool
}

// TextGenerator returns the raw text of one completion.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// ChatRequest continues a conversation with one new user message.
type ChatRequest struct {
	System  string
	History []domain.ChatTurn
	Message string
}

// TextStream yields text chunks until io.EOF.
type TextStream interface {
	Recv() (string, error)
	Close() error
}

// ChatStreamer opens a streamed reply. A returned stream means the
// provider accepted the request.
type ChatStreamer interface {
	StreamChat(ctx context.Context, req ChatRequest) (TextStream, error)
}

// Provider is the text side of a generation backend.
type Provider interface {
	TextGenerator
	ChatStreamer
}

// ImageRequest asks for one generated image.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
	MimeType    string
}

// Image is raw image bytes.
type Image struct {
	Data     []byte
	MimeType string
}

// ImageGenerator produces artwork from a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (Image, error)
}

// Source hands out a capability that may fail to construct, e.g. when no
// credential is configured.
type Source[T any] interface {
	Get() (T, error)
}
