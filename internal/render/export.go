package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

var (
	exportPolicy   = bluemonday.UGCPolicy()
	exportMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))
)

// HoroscopeMarkdown lays the reading out as a printable document. year goes
// into the footer.
func HoroscopeMarkdown(res domain.AnalysisResult, data domain.BirthData, lang domain.Lang, year int) string {
	m := i18n.For(lang)
	h := m.Horoscope
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", h.Title)

	fmt.Fprintf(&b, "## %s\n\n", h.UserInfo)
	fmt.Fprintf(&b, "- **%s:** %s\n", h.DateLabel, data.Date)
	fmt.Fprintf(&b, "- **%s:** %s\n", h.TimeLabel, data.Time)
	fmt.Fprintf(&b, "- **%s:** %s\n\n", h.GenderLabel, genderLabel(data.Gender, m))

	cs := res.ChartSummary
	fmt.Fprintf(&b, "## %s\n\n", h.SummaryTitle)
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", h.MainElement, h.ZodiacAnimal, h.WesternZodiac, h.DestinyPalace)
	b.WriteString("| --- | --- | --- | --- |\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n\n", cell(cs.MainElement), cell(cs.ZodiacAnimal), cell(cs.WesternZodiac), cell(cs.DestinyPalace))

	la := res.LifetimeAnalysis
	fmt.Fprintf(&b, "## %s\n\n", h.LifetimeTitle)
	for _, s := range []struct{ title, body string }{
		{h.Overview, la.Overview},
		{h.Career, la.Career},
		{h.Wealth, la.Wealth},
		{h.Love, la.LoveAndMarriage},
		{h.Health, la.Health},
		{h.Family, la.Family},
		{h.Synthesis, la.Synthesis},
	} {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", s.title, s.body)
	}

	fmt.Fprintf(&b, "## %s\n\n", h.PeriodsTitle)
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", h.Youth, la.KeyPeriods.Youth)
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", h.MiddleAge, la.KeyPeriods.MiddleAge)
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", h.OldAge, la.KeyPeriods.OldAge)

	ad := res.LuckyAdvice
	fmt.Fprintf(&b, "## %s\n\n", h.LuckyTitle)
	fmt.Fprintf(&b, "- **%s:** %s\n", h.Numbers, joinNumbers(ad.LuckyNumbers))
	fmt.Fprintf(&b, "- **%s:** %s\n", h.Colors, strings.Join(ad.LuckyColors, ", "))
	fmt.Fprintf(&b, "- **%s:** %s\n\n", h.Zodiacs, strings.Join(ad.CompatibleZodiacs, ", "))
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", h.Dos, ad.ThingsToDo)
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", h.Donts, ad.ThingsToAvoid)

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*"+h.Footer+"*\n", year)
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}

// HoroscopeHTML renders the Markdown export to a standalone page. Model
// text is sanitised, so markup it smuggles in does not survive.
func HoroscopeHTML(res domain.AnalysisResult, data domain.BirthData, lang domain.Lang, year int) ([]byte, error) {
	md := HoroscopeMarkdown(res, data, lang, year)

	var body bytes.Buffer
	if err := exportMarkdown.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	clean := exportPolicy.SanitizeBytes(body.Bytes())

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html lang=%q>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		lang.String(), html.EscapeString(i18n.For(lang).Horoscope.Title))
	page.Write(clean)
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
