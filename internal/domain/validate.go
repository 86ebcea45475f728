package domain

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	MaxNameLen    = 100
	MaxWishLen    = 300
	MaxEventLen   = 200
	MaxMessageLen = 4000
	MaxHistory    = 100
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup, trims whitespace and truncates to max runes.
func SanitizeText(s string, max int) string {
	s = html.UnescapeString(strictPolicy.Sanitize(s))
	s = strings.TrimSpace(s)
	if max > 0 && utf8.RuneCountInString(s) > max {
		s = string([]rune(s)[:max])
	}
	return s
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validDate(s string) bool {
	t, err := time.Parse(time.DateOnly, s)
	return err == nil && t.Year() >= 1900 && t.Year() <= 2200
}

// Validate checks the horoscope form values.
func (b BirthData) Validate() error {
	if !validDate(b.Date) {
		return invalid("date must be YYYY-MM-DD, got %q", b.Date)
	}
	if _, err := time.Parse("15:04", b.Time); err != nil {
		return invalid("time must be HH:MM, got %q", b.Time)
	}
	if b.Gender != Male && b.Gender != Female {
		return invalid("gender must be male or female, got %q", b.Gender)
	}
	return nil
}

// Sanitized returns a copy with free text cleaned.
func (d DateSelectionData) Sanitized() DateSelectionData {
	d.EventType = SanitizeText(d.EventType, MaxEventLen)
	d.BirthDate = strings.TrimSpace(d.BirthDate)
	return d
}

func (d DateSelectionData) Validate() error {
	if d.EventType == "" {
		return invalid("eventType is required")
	}
	if !validDate(d.BirthDate) {
		return invalid("birthDate must be YYYY-MM-DD, got %q", d.BirthDate)
	}
	if d.TargetMonth < 1 || d.TargetMonth > 12 {
		return invalid("targetMonth must be between 1 and 12")
	}
	if d.TargetYear < 1900 || d.TargetYear > 2200 {
		return invalid("targetYear must be between 1900 and 2200")
	}
	return nil
}

// Sanitized returns a copy with free text cleaned.
func (t TalismanRequest) Sanitized() TalismanRequest {
	t.Name = SanitizeText(t.Name, MaxNameLen)
	t.Wish = SanitizeText(t.Wish, MaxWishLen)
	t.BirthDate = strings.TrimSpace(t.BirthDate)
	return t
}

func (t TalismanRequest) Validate() error {
	if t.Name == "" {
		return invalid("name is required")
	}
	if t.Wish == "" {
		return invalid("wish is required")
	}
	if !validDate(t.BirthDate) {
		return invalid("birthDate must be YYYY-MM-DD, got %q", t.BirthDate)
	}
	return nil
}

// ValidateChat checks a chat submission and its history.
func ValidateChat(message string, history []ChatTurn) error {
	if strings.TrimSpace(message) == "" {
		return invalid("message is required")
	}
	if utf8.RuneCountInString(message) > MaxMessageLen {
		return invalid("message must be at most %d characters", MaxMessageLen)
	}
	if len(history) > MaxHistory {
		return invalid("history must have at most %d entries", MaxHistory)
	}
	for i, turn := range history {
		if turn.Role != RoleUser && turn.Role != RoleModel {
			return invalid("history[%d].role must be user or model", i)
		}
		if strings.TrimSpace(turn.Text()) == "" {
			return invalid("history[%d] has no text", i)
		}
	}
	return nil
}
