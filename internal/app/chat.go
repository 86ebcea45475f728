package app

import (
	"context"
	"fmt"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/ports"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/prompt"
)

// Chat opens a streamed reply to message. The caller owns the stream.
func (s *Service) Chat(ctx context.Context, message string, history []domain.ChatTurn, lang domain.Lang) (ports.TextStream, error) {
	if err := domain.ValidateChat(message, history); err != nil {
		return nil, err
	}
	gen, err := s.text.Get()
	if err != nil {
		return nil, err
	}

	stream, err := gen.StreamChat(ctx, ports.ChatRequest{
		System:  prompt.ChatSystem(lang),
		History: history,
		Message: message,
	})
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return stream, nil
}
