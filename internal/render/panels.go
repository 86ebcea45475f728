package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/session"
)

const gaugeCells = 20

// Gauge draws a suitability score as a bar. Out-of-range scores are
// clamped for display only.
func Gauge(score float64) string {
	pct := domain.ClampScore(score)
	filled := pct * gaugeCells / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeCells-filled)

	style := gaugeLow
	switch {
	case pct >= 80:
		style = gaugeHigh
	case pct >= 50:
		style = gaugeMid
	}
	return style.Render(bar) + fmt.Sprintf(" %d%%", pct)
}

func section(b *strings.Builder, heading, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n\n")
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + value
}

func panel(title, body string) string {
	return titleStyle.Render(title) + "\n" + panelStyle.Render(strings.TrimRight(body, "\n"))
}

func genderLabel(g domain.Gender, m *i18n.Messages) string {
	if g == domain.Female {
		return m.Horoscope.Female
	}
	return m.Horoscope.Male
}

func joinNumbers(ns []float64) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func Horoscope(res domain.AnalysisResult, data domain.BirthData, lang domain.Lang) string {
	m := i18n.For(lang)
	h := m.Horoscope
	var b strings.Builder

	section(&b, h.UserInfo, strings.Join([]string{
		field(h.DateLabel, data.Date),
		field(h.TimeLabel, data.Time),
		field(h.GenderLabel, genderLabel(data.Gender, m)),
	}, "\n"))

	cs := res.ChartSummary
	section(&b, h.SummaryTitle, strings.Join([]string{
		field(h.MainElement, cs.MainElement),
		field(h.ZodiacAnimal, cs.ZodiacAnimal),
		field(h.WesternZodiac, cs.WesternZodiac),
		field(h.DestinyPalace, cs.DestinyPalace),
	}, "\n"))

	la := res.LifetimeAnalysis
	section(&b, h.Overview, la.Overview)
	section(&b, h.Career, la.Career)
	section(&b, h.Wealth, la.Wealth)
	section(&b, h.Love, la.LoveAndMarriage)
	section(&b, h.Health, la.Health)
	section(&b, h.Family, la.Family)
	section(&b, h.Synthesis, la.Synthesis)

	section(&b, h.PeriodsTitle, strings.Join([]string{
		field(h.Youth, la.KeyPeriods.Youth),
		field(h.MiddleAge, la.KeyPeriods.MiddleAge),
		field(h.OldAge, la.KeyPeriods.OldAge),
	}, "\n"))

	ad := res.LuckyAdvice
	section(&b, h.LuckyTitle, strings.Join([]string{
		field(h.Numbers, joinNumbers(ad.LuckyNumbers)),
		field(h.Colors, strings.Join(ad.LuckyColors, ", ")),
		field(h.Zodiacs, strings.Join(ad.CompatibleZodiacs, ", ")),
		field(h.Dos, ad.ThingsToDo),
		field(h.Donts, ad.ThingsToAvoid),
	}, "\n"))

	return panel(h.Title, b.String())
}

func Divination(res domain.DivinationResult, lang domain.Lang) string {
	d := i18n.For(lang).Divination
	var b strings.Builder

	b.WriteString(poemStyle.Render(res.Poem))
	b.WriteString("\n\n")
	section(&b, d.Overview, res.Interpretation.Overview)
	section(&b, d.Career, res.Interpretation.Career)
	section(&b, d.Love, res.Interpretation.Love)
	section(&b, d.Health, res.Interpretation.Health)
	section(&b, d.Advice, res.Advice)

	title := fmt.Sprintf("%s %d", d.StickNumber, res.StickNumber)
	if res.Name != "" {
		title += " · " + res.Name
	}
	return panel(title, b.String())
}

func Dates(dates []domain.AuspiciousDate, lang domain.Lang) string {
	d := i18n.For(lang).Dates
	if len(dates) == 0 {
		return panel(d.Title, mutedStyle.Render(d.NoResults))
	}

	var b strings.Builder
	for _, day := range dates {
		heading := day.GregorianDate
		if day.DayOfWeek != "" {
			heading = day.DayOfWeek + ", " + heading
		}
		lines := []string{
			field(d.Score, Gauge(day.SuitabilityScore)),
			field(d.LunarDate, day.LunarDate),
			field(d.GoodHours, day.GoodHours),
		}
		if len(day.AuspiciousStars) > 0 {
			lines = append(lines, field(d.Auspicious, strings.Join(day.AuspiciousStars, ", ")))
		}
		if len(day.InauspiciousStars) > 0 {
			lines = append(lines, field(d.Inauspicious, strings.Join(day.InauspiciousStars, ", ")))
		}
		if len(day.ConflictingZodiacs) > 0 {
			lines = append(lines, field(d.Conflicting, strings.Join(day.ConflictingZodiacs, ", ")))
		}
		lines = append(lines, field(d.Explanation, day.Explanation))
		section(&b, heading, strings.Join(lines, "\n"))
	}
	return panel(d.Title, b.String())
}

// Talisman renders the texts of a talisman. savedTo is the file the image
// was written to; leave it empty to omit the line.
func Talisman(res domain.TalismanResult, savedTo string, lang domain.Lang) string {
	t := i18n.For(lang).Talisman
	var b strings.Builder

	b.WriteString(poemStyle.Render(res.BlessingText))
	b.WriteString("\n\n")
	section(&b, t.Symbolism, res.Explanation)
	section(&b, t.Instructions, res.Instructions)
	if res.MimeType == domain.MimeSVG {
		b.WriteString(mutedStyle.Render(t.Placeholder))
		b.WriteString("\n")
	}
	if savedTo != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(t.Saved, savedTo)))
	}
	return panel(t.Title, b.String())
}

func Quote(q domain.Quote) string {
	return poemStyle.Render("“"+q.Text+"”") + "\n" + mutedStyle.Render("- "+q.Author)
}

// ChatMessage formats one transcript line.
func ChatMessage(msg session.Message) string {
	if msg.Sender == session.User {
		return userStyle.Render("» ") + msg.Text
	}
	return botStyle.Render("☸ ") + msg.Text
}

// BotPrefix starts a streamed bot line.
func BotPrefix() string { return botStyle.Render("☸ ") }

func Error(err error) string { return errorStyle.Render(err.Error()) }
