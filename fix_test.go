package ekadashi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedicdata/ekadashi-tools/config"
	"github.com/vedicdata/ekadashi-tools/dataset"
	"github.com/vedicdata/ekadashi-tools/formatter"
)

func strptr(s string) *string { return &s }

func multiYearDocument() *dataset.Document {
	return &dataset.Document{
		Version:   "2.0",
		Generated: "2025-12-30",
		Source:    "Drik Panchang",
		Year:      2026,
		Notes:     "Multi-year scrape",
		DateRange: &dataset.DateRange{Start: "2025-12-01", End: "2027-01-31"},
		Timezones: map[string]*dataset.TimezoneInfo{
			"IST": {Cities: []string{"Mumbai", "Delhi", "Kolkata"}},
			"PST": {Cities: []string{"San Jose"}},
		},
		Ekadashis: []*dataset.Ekadashi{
			{
				ID:   1,
				Name: map[string]string{"en": "Saphala Ekadashi"},
				Timing: map[string]*dataset.Timing{
					"IST": {Date: "2025-12-15", ParanaStart: strptr("2025-12-16T07:10:00+05:30"), ParanaEnd: strptr("2025-12-16T09:20:00+05:30")},
				},
			},
			{
				ID:   2,
				Name: map[string]string{"en": "Jaya Ekādaśī"},
				Timing: map[string]*dataset.Timing{
					"IST": {Date: "2026-02-08", ParanaStart: strptr("2026-02-09T07:03:00+05:30"), ParanaEnd: strptr("2026-02-09T09:18:00+05:30")},
					"PST": {Date: "2026-02-07", ParanaStart: strptr("2026-02-08T06:55:00-08:00"), ParanaEnd: strptr("2026-02-08T09:02:00-08:00")},
				},
			},
			{
				ID:   3,
				Name: map[string]string{"en": "Mohini Ekadashi"},
				Timing: map[string]*dataset.Timing{
					"IST": {Date: "2026-04-26", ParanaStart: strptr("2026-04-27T05:40:00+05:30"), ParanaEnd: strptr("2026-04-27T08:15:00+05:30")},
					"PST": {Date: "2026-04-26", ParanaStart: strptr("2026-04-27T06:10:00-07:00"), ParanaEnd: strptr("2026-04-27T08:40:00-07:00")},
				},
			},
			{
				ID:   4,
				Name: map[string]string{"en": "Putrada Ekadashi"},
				Timing: map[string]*dataset.Timing{
					"IST": {Date: "2027-01-18", ParanaStart: strptr("2027-01-19T07:15:00+05:30"), ParanaEnd: strptr("2027-01-19T09:25:00+05:30")},
				},
			},
		},
	}
}

func fixConfig() config.FixConfig {
	cfg := config.DefaultAppConfig().Fix
	cfg.Corrections = map[string]dataset.Timing{}
	return cfg
}

func TestFixDocumentFiltersAndRenumbers(t *testing.T) {
	doc := multiYearDocument()
	res := FixDocument(doc, fixConfig())

	assert.Equal(t, 2, res.Kept)
	assert.Equal(t, 2, res.Removed)
	assert.Equal(t, 0, res.Corrected)

	require.Len(t, doc.Ekadashis, 2)
	assert.Equal(t, 1, doc.Ekadashis[0].ID)
	assert.Equal(t, "Jaya Ekādaśī", doc.Ekadashis[0].Name["en"])
	assert.Equal(t, 2, doc.Ekadashis[1].ID)
	assert.Equal(t, "Mohini Ekadashi", doc.Ekadashis[1].Name["en"])
}

func TestFixDocumentRewritesMetadata(t *testing.T) {
	doc := multiYearDocument()
	FixDocument(doc, fixConfig())

	require.NotNil(t, doc.DateRange)
	assert.Equal(t, "2026-01-01", doc.DateRange.Start)
	assert.Equal(t, "2026-12-31", doc.DateRange.End)
	assert.Equal(t, []string{"India"}, doc.Timezones["IST"].Cities)
	assert.Equal(t, []string{"San Jose"}, doc.Timezones["PST"].Cities)
}

func TestFixDocumentAppliesCorrections(t *testing.T) {
	doc := multiYearDocument()
	cfg := config.DefaultAppConfig().Fix
	res := FixDocument(doc, cfg)

	assert.Equal(t, 1, res.Corrected)

	var mohini *dataset.Ekadashi
	for _, e := range doc.Ekadashis {
		if e.Name["en"] == "Mohini Ekadashi" {
			mohini = e
		}
	}
	require.NotNil(t, mohini)

	want := cfg.Corrections["Mohini Ekadashi"]
	assert.Equal(t, &want, mohini.Timing["IST"])

	// the PST block of the corrected entry is untouched
	require.NotNil(t, mohini.Timing["PST"])
	assert.Equal(t, "2026-04-26", mohini.Timing["PST"].Date)
	assert.Equal(t, "2026-04-27T06:10:00-07:00", *mohini.Timing["PST"].ParanaStart)
}

func TestFixDocumentFiltersOnSourceDateNotCorrectedDate(t *testing.T) {
	doc := multiYearDocument()
	cfg := fixConfig()
	// correction would move the entry into 2026, but its source date is 2025
	// so the filter still drops it
	cfg.Corrections["Saphala Ekadashi"] = dataset.Timing{
		Date:        "2026-12-04",
		ParanaStart: strptr("2026-12-05T06:45:00+05:30"),
		ParanaEnd:   strptr("2026-12-05T10:49:00+05:30"),
	}
	res := FixDocument(doc, cfg)

	assert.Equal(t, 0, res.Corrected)
	for _, e := range doc.Ekadashis {
		assert.NotEqual(t, "Saphala Ekadashi", e.Name["en"])
	}
}

func TestFixDocumentIdempotentWithoutCorrections(t *testing.T) {
	doc := multiYearDocument()
	cfg := fixConfig()
	FixDocument(doc, cfg)

	first, err := formatter.MarshalDocument(doc)
	require.NoError(t, err)

	res := FixDocument(doc, cfg)
	assert.Equal(t, 0, res.Removed)

	second, err := formatter.MarshalDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRunFixEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ekadashi_data_v2.json")
	require.NoError(t, formatter.WriteDocument(input, multiYearDocument()))

	cfg := config.DefaultAppConfig().Fix
	cfg.Input = input
	cfg.Output = filepath.Join(dir, "ekadashi_data.json")

	require.NoError(t, RunFix(cfg))

	out, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	// non-ASCII is preserved literally, never \u-escaped
	assert.Contains(t, string(out), "Jaya Ekādaśī")
	assert.NotContains(t, string(out), "\\u")

	doc, err := formatter.ReadDocument(cfg.Output)
	require.NoError(t, err)
	require.Len(t, doc.Ekadashis, 2)
	assert.Equal(t, 1, doc.Ekadashis[0].ID)
	assert.Equal(t, 2, doc.Ekadashis[1].ID)
}

func TestRunFixBadInputIsFatal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(input, []byte("{not json"), 0o644))

	cfg := config.DefaultAppConfig().Fix
	cfg.Input = input
	cfg.Output = filepath.Join(dir, "out.json")

	require.Error(t, RunFix(cfg))

	_, err := os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(err), "no partial output may be written")
}
