package main

import (
	"testing"

	"github.com/govalues/moneywords"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestTranslatorConfig_defaults(t *testing.T) {
	cfg, err := translatorConfig(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, moneywords.Dollar, cfg.Unit)
	assert.Equal(t, moneywords.RoundHalfUp, cfg.Rounding)
	assert.Equal(t, moneywords.StyleAmerican, cfg.Style)
	assert.Equal(t, moneywords.CaseUpper, cfg.Case)
}

func TestTranslatorConfig(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		input  string
		want   string
	}{
		{
			name:   "british lower",
			values: map[string]any{"words.style": "british", "words.case": "lower"},
			input:  "1001.5",
			want:   "one thousand and one dollars and fifty cents",
		},
		{
			name:   "irregular plural",
			values: map[string]any{"unit.name": "Pound", "unit.minor": "penny", "unit.minor_plural": "pence"},
			input:  "3.02",
			want:   "THREE POUNDS AND TWO PENCE",
		},
		{
			name:   "explicit plural",
			values: map[string]any{"unit.name": "yen", "unit.plural": "yen", "unit.scale": 0},
			input:  "1000.7",
			want:   "ONE THOUSAND ONE YEN",
		},
		{
			name:   "rounding down",
			values: map[string]any{"words.rounding": "down"},
			input:  "0.999",
			want:   "ZERO DOLLAR AND NINETY-NINE CENTS",
		},
		{
			name:   "three digit minor unit",
			values: map[string]any{"unit.name": "dinar", "unit.minor": "fils", "unit.minor_plural": "fils", "unit.scale": 3, "words.case": "title"},
			input:  "2.005",
			want:   "Two Dinars And Five Fils",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := translatorConfig(newTestViper(tt.values))
			require.NoError(t, err)

			got, err := translateLine(cfg, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslatorConfig_errors(t *testing.T) {
	tests := map[string]map[string]any{
		"unit":     {"unit.name": "doll4r"},
		"plural":   {"unit.plural": "!"},
		"minor":    {"unit.minor": ""},
		"scale":    {"unit.scale": 18},
		"rounding": {"words.rounding": "sideways"},
		"style":    {"words.style": "klingon"},
		"case":     {"words.case": "camel"},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := translatorConfig(newTestViper(values))
			assert.Error(t, err)
		})
	}
}

func TestSetupLogging(t *testing.T) {
	require.NoError(t, setupLogging("debug", "json"))
	require.NoError(t, setupLogging("info", "console"))
	assert.Error(t, setupLogging("verbose", "console"))
	assert.Error(t, setupLogging("info", "xml"))
}
