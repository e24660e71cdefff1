package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studydash/internal/core/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tag, lang, region string
	}{
		{"pt_BR.UTF-8", "pt", "BR"},
		{"en-US", "en", "US"},
		{"ru", "ru", ""},
		{"de_DE", "en", "DE"},
		{"", "en", ""},
		{"zh-Hant-TW", "en", "TW"},
	}
	for _, tt := range tests {
		lang, region := Parse(tt.tag)
		require.Equal(t, tt.lang, lang, tt.tag)
		require.Equal(t, tt.region, region, tt.tag)
	}
}

func TestTranslate(t *testing.T) {
	t.Cleanup(func() { Init("en") })

	require.Equal(t, "es", Init("es_MX"))
	require.Equal(t, "Reiniciar", T("Reset"))
	require.Equal(t, "Descanso Corto", ModeLabel(model.ModeShortBreak))
	require.Equal(t, "untranslated", T("untranslated"))

	Init("en")
	require.Equal(t, "Reset", T("Reset"))
	require.Equal(t, "Work", ModeLabel(model.ModeWork))
}

func TestDefaultClockFormat(t *testing.T) {
	t.Cleanup(func() { Init("en") })

	Init("en_US")
	require.Equal(t, model.Format12h, DefaultClockFormat())

	Init("pt_BR")
	require.Equal(t, model.Format24h, DefaultClockFormat())
}

func TestEveryTranslationCoversAllLanguages(t *testing.T) {
	for key, byLang := range translations {
		for _, lang := range supported[1:] {
			require.NotEmpty(t, byLang[lang], "%s/%s", key, lang)
		}
	}
}
