package main

import (
	"fmt"

	"github.com/govalues/moneywords"
	"github.com/spf13/viper"
)

// configFlags maps configuration keys to the persistent flags bound to them.
var configFlags = map[string]string{
	"logging.level":     "log-level",
	"logging.format":    "log-format",
	"unit.name":         "unit",
	"unit.plural":       "plural",
	"unit.minor":        "minor-unit",
	"unit.minor_plural": "minor-plural",
	"unit.scale":        "scale",
	"words.rounding":    "rounding",
	"words.style":       "style",
	"words.case":        "case",
}

// setDefaults sets the values used when neither a flag, an environment
// variable, nor the config file provides one.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("unit.name", "dollar")
	v.SetDefault("unit.minor", "cent")
	v.SetDefault("unit.scale", 2)
	v.SetDefault("words.rounding", "half-up")
	v.SetDefault("words.style", "american")
	v.SetDefault("words.case", "upper")
}

// translatorConfig builds the translation settings from configuration.
func translatorConfig(v *viper.Viper) (moneywords.Config, error) {
	u, err := moneywords.ParseUnit(v.GetString("unit.name"))
	if err != nil {
		return moneywords.Config{}, fmt.Errorf("invalid unit: %w", err)
	}
	if plural := v.GetString("unit.plural"); plural != "" {
		u, err = u.WithPlural(plural)
		if err != nil {
			return moneywords.Config{}, fmt.Errorf("invalid unit: %w", err)
		}
	}

	minor, minorPlural, scale := v.GetString("unit.minor"), v.GetString("unit.minor_plural"), v.GetInt("unit.scale")
	if scale == 0 {
		minor, minorPlural = "", ""
	}
	u, err = u.WithMinor(minor, minorPlural, scale)
	if err != nil {
		return moneywords.Config{}, fmt.Errorf("invalid minor unit: %w", err)
	}

	rounding, err := moneywords.ParseRoundingMode(v.GetString("words.rounding"))
	if err != nil {
		return moneywords.Config{}, err
	}
	style, err := moneywords.ParseStyle(v.GetString("words.style"))
	if err != nil {
		return moneywords.Config{}, err
	}
	letterCase, err := moneywords.ParseCase(v.GetString("words.case"))
	if err != nil {
		return moneywords.Config{}, err
	}

	return moneywords.Config{
		Unit:     u,
		Rounding: rounding,
		Style:    style,
		Case:     letterCase,
	}, nil
}
