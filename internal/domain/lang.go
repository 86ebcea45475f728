package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang selects prompt language and user-facing strings.
type Lang string

const (
	LangVI Lang = "vi"
	LangEN Lang = "en"
)

// ParseLang maps any English tag (en, en-US, en_GB...) to LangEN and
// everything else, including empty or malformed input, to LangVI.
func ParseLang(raw string) Lang {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if raw == "" {
		return LangVI
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return LangVI
	}
	if base, _ := tag.Base(); base.String() == "en" {
		return LangEN
	}
	return LangVI
}

func (l Lang) String() string { return string(l) }
