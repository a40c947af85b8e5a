package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vedicdata/ekadashi-tools/dataset"
)

// Config is the global application configuration
var Config AppConfig

// EnvConfigPath names the environment variable that can point at an
// alternate config file (typically set through a .env file).
const EnvConfigPath = "EKADASHI_CONFIG"

// DefaultAppConfig returns the compiled-in configuration. The values are the
// literals of the original 2026 dataset runs: the US Pacific DST window with
// PDT/PST offsets for the normalizer, and the IST correction table for the
// fixer.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Normalize: NormalizeConfig{
			Input:    "ekadashi_data_pst_2026_raw.json",
			Output:   "assets/ekadashi_data_pst_2026.json",
			Region:   "PST",
			Language: "en",
			Year:     2026,
			Version:  "1.5",
			Source:   "Drik Panchang (San Jose)",
			Notes:    "Parana times for San Jose, CA. Includes DST adjustments.",
			DST: DSTConfig{
				// DST starts 2nd Sunday of March, ends 1st Sunday of November.
				Start:          "2026-03-08T02:00",
				End:            "2026-11-01T02:00",
				DaylightOffset: "-07:00",
				StandardOffset: "-08:00",
			},
		},
		Fix: FixConfig{
			Input:    "assets/ekadashi_data_v2.json",
			Output:   "assets/ekadashi_data.json",
			Year:     2026,
			Timezone: "IST",
			Language: "en",
			Cities:   []string{"India"},
			Corrections: map[string]dataset.Timing{
				"Mohini Ekadashi": {
					Date:         "2026-04-27",
					FastingStart: strp("2026-04-27T05:36:00+05:30"),
					ParanaStart:  strp("2026-04-28T05:35:00+05:30"),
					ParanaEnd:    strp("2026-04-28T09:47:00+05:30"),
				},
				"Apara Ekadashi": {
					Date:         "2026-05-13",
					FastingStart: strp("2026-05-13T05:26:00+05:30"),
					ParanaStart:  strp("2026-05-14T05:25:00+05:30"),
					ParanaEnd:    strp("2026-05-14T09:39:00+05:30"),
				},
				"Prabodhini Ekadashi": {
					Date:         "2026-10-22",
					FastingStart: strp("2026-10-22T06:19:00+05:30"),
					ParanaStart:  strp("2026-10-23T06:20:00+05:30"),
					ParanaEnd:    strp("2026-10-23T10:29:00+05:30"),
				},
				"Utpanna Ekadashi": {
					Date:         "2026-11-05",
					FastingStart: strp("2026-11-05T06:26:00+05:30"),
					ParanaStart:  strp("2026-11-06T06:27:00+05:30"),
					ParanaEnd:    strp("2026-11-06T10:35:00+05:30"),
				},
				"Saphala Ekadashi": {
					Date:         "2026-12-04",
					FastingStart: strp("2026-12-04T06:44:00+05:30"),
					ParanaStart:  strp("2026-12-05T06:45:00+05:30"),
					ParanaEnd:    strp("2026-12-05T10:49:00+05:30"),
				},
				"Pausha Putrada Ekadashi": {
					Date:         "2026-12-20",
					FastingStart: strp("2026-12-20T06:54:00+05:30"),
					ParanaStart:  strp("2026-12-21T06:55:00+05:30"),
					ParanaEnd:    strp("2026-12-21T10:57:00+05:30"),
				},
			},
		},
	}
}

// LoadAppConfig loads and validates the application configuration. The
// config file is resolved from path, then the EKADASHI_CONFIG environment
// variable, then ./config.yml. A missing file is not an error: the defaults
// apply. A file that exists but fails to parse or validate is a structural
// error.
func LoadAppConfig(path string) error {
	candidates := make([]string, 0, 3)
	if path != "" {
		candidates = append(candidates, path)
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, "config.yml")

	var data []byte
	found := false
	for _, p := range candidates {
		b, err := os.ReadFile(p)
		if err == nil {
			data, found = b, true
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var cfg AppConfig
	if found {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
	}
	cfg.applyDefaults()

	v := validator.New()
	if err := v.Struct(cfg.Normalize); err != nil {
		return err
	}
	if err := v.Struct(cfg.Fix); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// applyDefaults fills zero-valued fields with the compiled-in defaults so a
// partial config file only overrides what it names.
func (c *AppConfig) applyDefaults() {
	d := DefaultAppConfig()

	n := &c.Normalize
	if n.Input == "" {
		n.Input = d.Normalize.Input
	}
	if n.Output == "" {
		n.Output = d.Normalize.Output
	}
	if n.Region == "" {
		n.Region = d.Normalize.Region
	}
	if n.Language == "" {
		n.Language = d.Normalize.Language
	}
	if n.Year == 0 {
		n.Year = d.Normalize.Year
	}
	if n.Version == "" {
		n.Version = d.Normalize.Version
	}
	if n.Source == "" {
		n.Source = d.Normalize.Source
	}
	if n.Notes == "" {
		n.Notes = d.Normalize.Notes
	}
	if n.DST == (DSTConfig{}) {
		n.DST = d.Normalize.DST
	}

	f := &c.Fix
	if f.Input == "" {
		f.Input = d.Fix.Input
	}
	if f.Output == "" {
		f.Output = d.Fix.Output
	}
	if f.Year == 0 {
		f.Year = d.Fix.Year
	}
	if f.Timezone == "" {
		f.Timezone = d.Fix.Timezone
	}
	if f.Language == "" {
		f.Language = d.Fix.Language
	}
	if f.Cities == nil {
		f.Cities = d.Fix.Cities
	}
	if f.Corrections == nil {
		f.Corrections = d.Fix.Corrections
	}
}

func strp(s string) *string { return &s }
