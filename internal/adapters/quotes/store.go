package quotes

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
)

//go:embed data/*.json
var quoteFS embed.FS

// registry maps locales to their JSON files inside data/.
var registry = map[domain.Lang]string{
	domain.LangVI: "data/vi.json",
	domain.LangEN: "data/en.json",
}

// EmbeddedStore loads quotes from embedded JSON files.
type EmbeddedStore struct {
	once   sync.Once
	quotes map[domain.Lang][]domain.Quote
	err    error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	s.quotes = make(map[domain.Lang][]domain.Quote, len(registry))
	for lang, filename := range registry {
		raw, err := quoteFS.ReadFile(filename)
		if err != nil {
			s.err = fmt.Errorf("read embedded quotes %s: %w", lang, err)
			return
		}
		var list []domain.Quote
		if err := json.Unmarshal(raw, &list); err != nil {
			s.err = fmt.Errorf("parse embedded quotes %s: %w", lang, err)
			return
		}
		s.quotes[lang] = list
	}
}

// Quotes returns the list for lang, falling back to Vietnamese.
func (s *EmbeddedStore) Quotes(_ context.Context, lang domain.Lang) ([]domain.Quote, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	if list, ok := s.quotes[lang]; ok {
		return list, nil
	}
	return s.quotes[domain.LangVI], nil
}
