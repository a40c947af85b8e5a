package config

import "github.com/vedicdata/ekadashi-tools/dataset"

// DSTConfig describes the daylight-saving window of one region for one
// calendar year. Boundaries are naive local instants in the form
// "2006-01-02T15:04"; the window is half-open, so the start instant itself
// is daylight time and the end instant is not.
type DSTConfig struct {
	Start          string `yaml:"start" validate:"required"`
	End            string `yaml:"end" validate:"required"`
	DaylightOffset string `yaml:"daylightOffset" validate:"required"`
	StandardOffset string `yaml:"standardOffset" validate:"required"`
}

// NormalizeConfig drives the raw-to-normalized converter.
type NormalizeConfig struct {
	Input     string `yaml:"input" validate:"required"`
	Output    string `yaml:"output" validate:"required"`
	ICSOutput string `yaml:"icsOutput"`

	Region   string `yaml:"region" validate:"required"`
	Language string `yaml:"language" validate:"required"`

	Year    int    `yaml:"year" validate:"gt=0"`
	Version string `yaml:"version" validate:"required"`
	Source  string `yaml:"source"`
	Notes   string `yaml:"notes"`

	DST DSTConfig `yaml:"dst" validate:"required"`
}

// FixConfig drives the dataset corrector/filter.
type FixConfig struct {
	Input  string `yaml:"input" validate:"required"`
	Output string `yaml:"output" validate:"required"`

	// Year is the only calendar year retained by the filter step.
	Year int `yaml:"year" validate:"gt=0"`

	// Timezone is the timing-block label the filter and corrections apply to.
	Timezone string `yaml:"timezone" validate:"required"`

	// Language selects which localized name is matched against Corrections.
	Language string `yaml:"language" validate:"required"`

	// Cities replaces the city list of the Timezone metadata entry.
	Cities []string `yaml:"cities"`

	// Corrections maps event names to full replacement timing blocks for
	// the configured timezone label.
	Corrections map[string]dataset.Timing `yaml:"corrections"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Normalize NormalizeConfig `yaml:"normalize"`
	Fix       FixConfig       `yaml:"fix"`
}
