// Package prompt builds the localized generation requests for every
// feature. Builders are pure: same input, same request.
package prompt

import "github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"

const (
	horoscopeTemperature = 0.5
	datesTemperature     = 0.2
)

func temperature(v float32) *float32 { return &v }

// pick returns the English variant for LangEN and the Vietnamese one otherwise.
func pick(lang domain.Lang, vi, en string) string {
	if lang == domain.LangEN {
		return en
	}
	return vi
}
