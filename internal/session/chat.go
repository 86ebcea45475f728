package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/client"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

// ErrEmptyReply is returned when the server ends a reply without any text.
var ErrEmptyReply = errors.New("chat reply was empty")

type Sender string

const (
	User Sender = "user"
	Bot  Sender = "bot"
)

type Message struct {
	Sender Sender
	Text   string
}

// Phase of the chat turn currently in progress.
type Phase int

const (
	Ready Phase = iota
	Sending
	Streaming
)

// Turn identifies one submission. Updates for a turn that was discarded by
// a locale reset are ignored.
type Turn struct {
	id      uint64
	History []domain.ChatTurn
	Message string
	Lang    domain.Lang
}

// ChatStreamer sends one chat turn and returns the streamed reply body.
type ChatStreamer interface {
	ChatStream(ctx context.Context, history []domain.ChatTurn, message string, lang domain.Lang) (io.ReadCloser, error)
}

// Chat is an append-only transcript that always starts with the greeting.
type Chat struct {
	mu       sync.Mutex
	lang     domain.Lang
	messages []Message
	phase    Phase
	turn     uint64
}

func NewChat(lang domain.Lang) *Chat {
	c := &Chat{}
	c.reset(lang)
	return c
}

func (c *Chat) reset(lang domain.Lang) {
	c.lang = lang
	c.messages = []Message{{Sender: Bot, Text: i18n.For(lang).Chat.Greeting}}
	c.phase = Ready
	c.turn++
}

// SetLang starts a fresh transcript in lang. A reply still streaming for the
// old transcript no longer lands anywhere.
func (c *Chat) SetLang(lang domain.Lang) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset(lang)
}

func (c *Chat) Lang() domain.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

func (c *Chat) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Chat) Loading() bool { return c.Phase() != Ready }

// Messages returns a copy of the transcript.
func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// Submit appends the user message and returns the turn to send. The history
// holds every prior message except the greeting.
func (c *Chat) Submit(text string) (Turn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Ready {
		return Turn{}, domain.ErrBusy
	}
	if strings.TrimSpace(text) == "" {
		return Turn{}, domain.ErrInvalidInput
	}

	history := make([]domain.ChatTurn, 0, len(c.messages)-1)
	for _, m := range c.messages[1:] {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := domain.RoleUser
		if m.Sender == Bot {
			role = domain.RoleModel
		}
		history = append(history, domain.ChatTurn{Role: role, Parts: []domain.ChatPart{{Text: m.Text}}})
	}

	c.messages = append(c.messages, Message{Sender: User, Text: text})
	c.phase = Sending
	c.turn++
	return Turn{id: c.turn, History: history, Message: text, Lang: c.lang}, nil
}

func (c *Chat) current(t Turn) bool { return t.id == c.turn }

// BeginReply appends the empty bot message the reply accumulates into.
func (c *Chat) BeginReply(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(t) || c.phase != Sending {
		return
	}
	c.messages = append(c.messages, Message{Sender: Bot})
	c.phase = Streaming
}

// replied reports whether the turn's bot message has any text yet.
func (c *Chat) replied(t Turn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(t) || c.phase != Streaming {
		return true
	}
	return strings.TrimSpace(c.messages[len(c.messages)-1].Text) != ""
}

// AppendChunk grows the bot message of the turn in place.
func (c *Chat) AppendChunk(t Turn, chunk string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(t) || c.phase != Streaming {
		return
	}
	last := &c.messages[len(c.messages)-1]
	last.Text += chunk
}

func (c *Chat) Finish(t Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(t) {
		return
	}
	c.phase = Ready
}

// FailTurn leaves exactly one bot message for the failed turn: the empty
// placeholder is overwritten, a partial reply gets msg appended, and with no
// placeholder yet msg is appended as a new message.
func (c *Chat) FailTurn(t Turn, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(t) {
		return
	}
	switch c.phase {
	case Streaming:
		last := &c.messages[len(c.messages)-1]
		if last.Text == "" {
			last.Text = msg
		} else {
			last.Text += "\n\n" + msg
		}
	case Sending:
		c.messages = append(c.messages, Message{Sender: Bot, Text: msg})
	}
	c.phase = Ready
}

// Converse runs one full turn against s. onChunk, when set, sees each
// decoded piece of the reply as it arrives.
func (c *Chat) Converse(ctx context.Context, s ChatStreamer, text string, onChunk func(string)) error {
	t, err := c.Submit(text)
	if err != nil {
		return err
	}

	body, err := s.ChatStream(ctx, t.History, t.Message, t.Lang)
	if err != nil {
		c.FailTurn(t, failureText(err, t.Lang))
		return err
	}
	defer body.Close()

	c.BeginReply(t)
	r := transform.NewReader(body, unicode.UTF8.NewDecoder())
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			c.AppendChunk(t, chunk)
			if onChunk != nil {
				onChunk(chunk)
			}
		}
		if errors.Is(err, io.EOF) {
			if !c.replied(t) {
				c.FailTurn(t, i18n.For(t.Lang).Chat.Error)
				return ErrEmptyReply
			}
			c.Finish(t)
			return nil
		}
		if err != nil {
			c.FailTurn(t, failureText(err, t.Lang))
			return err
		}
	}
}

func failureText(err error, lang domain.Lang) string {
	var cerr *client.Error
	if errors.As(err, &cerr) {
		return cerr.Message
	}
	return i18n.For(lang).Chat.Error
}
