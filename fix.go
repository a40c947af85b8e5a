package ekadashi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vedicdata/ekadashi-tools/config"
	"github.com/vedicdata/ekadashi-tools/dataset"
	"github.com/vedicdata/ekadashi-tools/formatter"
)

// FixResult counts the outcomes of one corrector run.
type FixResult struct {
	Kept      int
	Corrected int
	Removed   int
}

// FixDocument transforms a multi-year document in memory into a single-year,
// simplified one:
//
//  1. date_range becomes the target year's first and last calendar date, and
//     the city list of the configured timezone collapses to cfg.Cities.
//  2. Entries whose name matches the correction table get their timing block
//     for cfg.Timezone replaced wholesale; other timezone labels on the same
//     entry are untouched.
//  3. Entries whose cfg.Timezone date does not start with the target year are
//     dropped. The filter decision uses the date as found in the source, not
//     the corrected one.
//  4. Survivors are renumbered 1..M in original relative order.
func FixDocument(doc *dataset.Document, cfg config.FixConfig) FixResult {
	year := strconv.Itoa(cfg.Year)
	doc.DateRange = &dataset.DateRange{Start: year + "-01-01", End: year + "-12-31"}
	if tz, ok := doc.Timezones[cfg.Timezone]; ok {
		tz.Cities = append([]string(nil), cfg.Cities...)
	}

	var res FixResult
	kept := make([]*dataset.Ekadashi, 0, len(doc.Ekadashis))
	for _, e := range doc.Ekadashis {
		name := e.Name[cfg.Language]

		date := ""
		if timing := e.Timing[cfg.Timezone]; timing != nil {
			date = timing.Date
		}
		if !strings.HasPrefix(date, year) {
			res.Removed++
			log.Info().Str("name", name).Str("date", date).Msgf("removed: not %s", year)
			continue
		}

		if corr, ok := cfg.Corrections[name]; ok {
			replacement := corr
			e.Timing[cfg.Timezone] = &replacement
			res.Corrected++
			log.Info().Str("name", name).Str("date", replacement.Date).Msg("corrected")
		}

		kept = append(kept, e)
		res.Kept++
		log.Info().Str("name", name).Str("date", e.Timing[cfg.Timezone].Date).Msg("kept")
	}

	for i, e := range kept {
		e.ID = i + 1
	}
	doc.Ekadashis = kept
	return res
}

// RunFix executes the corrector: read the source document, transform fully in
// memory, then write once. A read or parse failure aborts before any output
// is touched.
func RunFix(cfg config.FixConfig) error {
	doc, err := formatter.ReadDocument(cfg.Input)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	res := FixDocument(doc, cfg)

	if err := formatter.WriteDocument(cfg.Output, doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	log.Info().
		Int("kept", res.Kept).
		Int("corrected", res.Corrected).
		Int("removed", res.Removed).
		Str("path", cfg.Output).
		Msg("corrected dataset written")
	return nil
}
