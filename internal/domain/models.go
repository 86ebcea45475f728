package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Gender of the person a horoscope is cast for.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// BirthData is the horoscope form input.
type BirthData struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Gender Gender `json:"gender"`
}

// AnalysisResult is the lifetime horoscope reading returned by the model.
type AnalysisResult struct {
	ChartSummary     ChartSummary     `json:"chartSummary"`
	LifetimeAnalysis LifetimeAnalysis `json:"lifetimeAnalysis"`
	LuckyAdvice      LuckyAdvice      `json:"luckyAdvice"`
}

type ChartSummary struct {
	MainElement   string `json:"mainElement"`
	ZodiacAnimal  string `json:"zodiacAnimal"`
	WesternZodiac string `json:"westernZodiac"`
	DestinyPalace string `json:"destinyPalace"`
}

type LifetimeAnalysis struct {
	Overview        string     `json:"overview"`
	Career          string     `json:"career"`
	Wealth          string     `json:"wealth"`
	LoveAndMarriage string     `json:"loveAndMarriage"`
	Health          string     `json:"health"`
	Family          string     `json:"family"`
	Synthesis       string     `json:"synthesis"`
	KeyPeriods      KeyPeriods `json:"keyPeriods"`
}

type KeyPeriods struct {
	Youth     string `json:"youth"`
	MiddleAge string `json:"middleAge"`
	OldAge    string `json:"oldAge"`
}

type LuckyAdvice struct {
	LuckyNumbers      []float64 `json:"luckyNumbers"`
	LuckyColors       []string  `json:"luckyColors"`
	CompatibleZodiacs []string  `json:"compatibleZodiacs"`
	ThingsToDo        string    `json:"thingsToDo"`
	ThingsToAvoid     string    `json:"thingsToAvoid"`
}

// DivinationResult is one interpreted oracle stick.
type DivinationResult struct {
	StickNumber    int                      `json:"stickNumber"`
	Name           string                   `json:"name"`
	Poem           string                   `json:"poem"`
	Interpretation DivinationInterpretation `json:"interpretation"`
	Advice         string                   `json:"advice"`
}

type DivinationInterpretation struct {
	Overview string `json:"overview"`
	Career   string `json:"career"`
	Love     string `json:"love"`
	Health   string `json:"health"`
}

// DateSelectionData is the auspicious-date finder input.
type DateSelectionData struct {
	EventType   string `json:"eventType"`
	BirthDate   string `json:"birthDate"`
	TargetMonth int    `json:"targetMonth"`
	TargetYear  int    `json:"targetYear"`
}

// AuspiciousDate is one candidate day. SuitabilityScore is kept exactly as
// the model returned it; use ClampScore before displaying.
type AuspiciousDate struct {
	GregorianDate      string   `json:"gregorianDate"`
	LunarDate          string   `json:"lunarDate"`
	DayOfWeek          string   `json:"dayOfWeek"`
	GoodHours          string   `json:"goodHours"`
	Explanation        string   `json:"explanation"`
	ConflictingZodiacs []string `json:"conflictingZodiacs"`
	SuitabilityScore   float64  `json:"suitabilityScore"`
	AuspiciousStars    []string `json:"auspiciousStars"`
	InauspiciousStars  []string `json:"inauspiciousStars"`
}

// DateSelection wraps the list the model returns.
type DateSelection struct {
	AuspiciousDates []AuspiciousDate `json:"auspiciousDates"`
}

// TalismanRequest is the talisman pipeline input.
type TalismanRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Wish      string `json:"wish"`
}

// TalismanResult carries base64 image bytes plus the accompanying texts.
type TalismanResult struct {
	ImageData    string `json:"imageData"`
	MimeType     string `json:"mimeType"`
	BlessingText string `json:"blessingText"`
	Explanation  string `json:"explanation"`
	Instructions string `json:"instructions"`
}

// TalismanText is the textual half of a talisman.
type TalismanText struct {
	BlessingText string `json:"blessingText"`
	Explanation  string `json:"explanation"`
	Instructions string `json:"instructions"`
}

// ElementProfile personalises the talisman artwork.
type ElementProfile struct {
	MainElement       string   `json:"mainElement"`
	CompatibleColors  []string `json:"compatibleColors"`
	CompatibleSymbols []string `json:"compatibleSymbols"`
	ZodiacProtector   string   `json:"zodiacProtector"`
	TalismanStyle     string   `json:"talismanStyle"`
	KeySymbol         string   `json:"keySymbol"`
}

const (
	MimePNG = "image/png"
	MimeSVG = "image/svg+xml"
)

// ChatRole is the role of a history entry as the generation API names it.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatPart is one text part of a chat turn.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is one prior message sent as chat history.
type ChatTurn struct {
	Role  ChatRole   `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// Text joins all parts of the turn.
func (t ChatTurn) Text() string {
	if len(t.Parts) == 1 {
		return t.Parts[0].Text
	}
	var s string
	for _, p := range t.Parts {
		s += p.Text
	}
	return s
}

// Quote is a short saying shown between readings.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
