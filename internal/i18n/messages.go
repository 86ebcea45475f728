// Package i18n holds every user-facing sentence as struct fields so a
// missing translation is a compile error rather than a silent key echo.
package i18n

import "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"

// Preset is a selectable form value with its localized label.
type Preset struct {
	Key   string
	Label string
}

type Errors struct {
	Config           string
	Connect          string
	Generic          string
	Unknown          string
	InvalidInput     string
	RateLimited      string
	MethodNotAllowed string
	Server           string
	Horoscope        string
	Divination       string
	DateSelection    string
	Talisman         string
	ImageFailed      string
	NameRequired     string
	Busy             string
}

type Chat struct {
	Greeting    string
	Placeholder string
	Error       string
	Thinking    string
}

type Horoscope struct {
	Title         string
	UserInfo      string
	DateLabel     string
	TimeLabel     string
	GenderLabel   string
	Male          string
	Female        string
	SummaryTitle  string
	MainElement   string
	ZodiacAnimal  string
	WesternZodiac string
	DestinyPalace string
	LifetimeTitle string
	Overview      string
	Career        string
	Wealth        string
	Love          string
	Health        string
	Family        string
	Synthesis     string
	PeriodsTitle  string
	Youth         string
	MiddleAge     string
	OldAge        string
	LuckyTitle    string
	Numbers       string
	Colors        string
	Zodiacs       string
	Dos           string
	Donts         string
	Footer        string // takes the year
	Loading       string
}

type Divination struct {
	StickNumber    string
	Poem           string
	Interpretation string
	Overview       string
	Career         string
	Love           string
	Health         string
	Advice         string
	Loading        string
}

type Dates struct {
	Title        string
	NoResults    string
	LunarDate    string
	GoodHours    string
	Explanation  string
	Conflicting  string
	Auspicious   string
	Inauspicious string
	Score        string
	Loading      string
	EventTypes   []Preset
}

type Talisman struct {
	Title        string
	Symbolism    string
	Instructions string
	Saved        string // takes the file path
	Loading      string
	Placeholder  string
	WishTypes    []Preset
	Fallback     domain.TalismanText
}

// Messages is the complete dictionary for one locale.
type Messages struct {
	AppTitle   string
	Errors     Errors
	Chat       Chat
	Horoscope  Horoscope
	Divination Divination
	Dates      Dates
	Talisman   Talisman
}

var catalog = map[domain.Lang]*Messages{
	domain.LangVI: &vi,
	domain.LangEN: &en,
}

// For returns the dictionary for lang, Vietnamese when lang is unknown.
func For(lang domain.Lang) *Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return &vi
}

// Locales lists the supported languages.
func Locales() []domain.Lang {
	return []domain.Lang{domain.LangVI, domain.LangEN}
}
