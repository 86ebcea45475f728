package i18n_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/i18n"
)

// walkStrings visits every string reachable from v, reporting its field path.
func walkStrings(t *testing.T, path string, v reflect.Value, visit func(path, s string)) {
	t.Helper()
	switch v.Kind() {
	case reflect.Pointer:
		walkStrings(t, path, v.Elem(), visit)
	case reflect.Struct:
		for i := range v.NumField() {
			walkStrings(t, path+"."+v.Type().Field(i).Name, v.Field(i), visit)
		}
	case reflect.Slice:
		for i := range v.Len() {
			walkStrings(t, path+"[]", v.Index(i), visit)
		}
	case reflect.String:
		visit(path, v.String())
	}
}

func TestEveryLocaleIsComplete(t *testing.T) {
	for _, lang := range i18n.Locales() {
		walkStrings(t, string(lang), reflect.ValueOf(i18n.For(lang)), func(path, s string) {
			require.NotEmpty(t, s, "missing translation at %s", path)
		})
	}
}

func TestPresetsAlign(t *testing.T) {
	vi := i18n.For(domain.LangVI)
	en := i18n.For(domain.LangEN)

	require.Len(t, en.Talisman.WishTypes, len(vi.Talisman.WishTypes))
	for i := range vi.Talisman.WishTypes {
		require.Equal(t, vi.Talisman.WishTypes[i].Key, en.Talisman.WishTypes[i].Key)
	}
	require.Len(t, en.Dates.EventTypes, len(vi.Dates.EventTypes))
	for i := range vi.Dates.EventTypes {
		require.Equal(t, vi.Dates.EventTypes[i].Key, en.Dates.EventTypes[i].Key)
	}
}

func TestForUnknownLangFallsBackToVietnamese(t *testing.T) {
	require.Same(t, i18n.For(domain.LangVI), i18n.For("fr"))
	require.NotEqual(t, i18n.For(domain.LangVI).Errors.Config, i18n.For(domain.LangEN).Errors.Config)
}
