package app

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// LotusParams shapes the placeholder artwork.
type LotusParams struct {
	Width, Height int
	Petals        int
	Scale         float64
	PetalOpacity  float64
	CenterColor   string
	EdgeColor     string
	GoldFrom      string
	GoldTo        string
	Caption       string
}

var DefaultLotus = LotusParams{
	Width:        900,
	Height:       1600,
	Petals:       8,
	Scale:        1.2,
	PetalOpacity: 0.8,
	CenterColor:  "rgb(76, 29, 149)",
	EdgeColor:    "rgb(12, 10, 29)",
	GoldFrom:     "#FCD34D",
	GoldTo:       "#FBBF24",
	Caption:      "Huyền Phong Phật Đạo",
}

const petalPath = "M 0 -250 C 80 -250, 120 -80, 0 0 C -120 -80, -80 -250, 0 -250 Z"

// FallbackImage renders a glowing gold lotus on a violet radial background
// as a compact SVG document.
func FallbackImage(p LotusParams) []byte {
	if p.Petals <= 0 {
		p.Petals = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, p.Width, p.Height, p.Width, p.Height)
	b.WriteString(`<defs>`)
	fmt.Fprintf(&b, `<radialGradient id="bg" cx="50%%" cy="50%%" r="50%%" fx="50%%" fy="50%%">`+
		`<stop offset="0%%" style="stop-color:%s;stop-opacity:1"/>`+
		`<stop offset="100%%" style="stop-color:%s;stop-opacity:1"/></radialGradient>`, p.CenterColor, p.EdgeColor)
	fmt.Fprintf(&b, `<linearGradient id="gold" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+
		`<stop offset="0%%" style="stop-color:%s;"/><stop offset="100%%" style="stop-color:%s;"/></linearGradient>`, p.GoldFrom, p.GoldTo)
	b.WriteString(`<filter id="glow"><feGaussianBlur stdDeviation="20" result="blur"/>` +
		`<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge></filter>`)
	b.WriteString(`</defs>`)

	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#bg)"/>`, p.Width, p.Height)
	fmt.Fprintf(&b, `<g transform="translate(%d, %d) scale(%g)" filter="url(#glow)">`, p.Width/2, p.Height/2, p.Scale)
	step := 360.0 / float64(p.Petals)
	for i := range p.Petals {
		fmt.Fprintf(&b, `<path d="%s" fill="url(#gold)" opacity="%g" transform="rotate(%g)"/>`, petalPath, p.PetalOpacity, step*float64(i))
	}
	b.WriteString(`<circle cx="0" cy="0" r="70" fill="url(#gold)"/></g>`)

	b.WriteString(`<text x="50%" y="90%" font-family="Cormorant Garamond, serif" font-size="60" fill="rgba(255,255,255,0.7)" text-anchor="middle">`)
	_ = xml.EscapeText(&b, []byte(p.Caption))
	b.WriteString(`</text></svg>`)
	return []byte(b.String())
}
