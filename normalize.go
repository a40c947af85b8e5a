package ekadashi

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vedicdata/ekadashi-tools/config"
	"github.com/vedicdata/ekadashi-tools/dataset"
	"github.com/vedicdata/ekadashi-tools/formatter"
	"github.com/vedicdata/ekadashi-tools/ics"
)

// BuildNormalizedDocument maps raw scraped entries into a normalized dataset
// document. IDs are assigned 1..N in input order. Each entry gets a
// single-language name map and one timing block under cfg.Region holding the
// literal fasting date and the converted parana instants. Unresolvable parana
// times become nil; fasting_start is never emitted because it was never
// scraped.
func BuildNormalizedDocument(entries []dataset.RawEntry, cfg config.NormalizeConfig, now time.Time) (*dataset.Document, error) {
	rule, err := NewDSTRule(cfg.DST)
	if err != nil {
		return nil, err
	}

	ekadashis := make([]*dataset.Ekadashi, 0, len(entries))
	for i, e := range entries {
		timing := &dataset.Timing{
			Date:        e.FastingDate,
			ParanaStart: ISOInstant(e.ParanaDate, e.ParanaStart, rule),
			ParanaEnd:   ISOInstant(e.ParanaDate, e.ParanaEnd, rule),
		}
		ekadashis = append(ekadashis, &dataset.Ekadashi{
			ID:     i + 1,
			Name:   map[string]string{cfg.Language: e.Name},
			Timing: map[string]*dataset.Timing{cfg.Region: timing},
		})
	}

	return &dataset.Document{
		Version:   cfg.Version,
		Generated: now.Format("2006-01-02"),
		Source:    cfg.Source,
		Year:      cfg.Year,
		Notes:     cfg.Notes,
		Ekadashis: ekadashis,
	}, nil
}

// RunNormalize executes the raw-to-normalized conversion: one read, one
// in-memory transform, one write. Read and write failures are structural and
// abort the run with no partial output.
func RunNormalize(cfg config.NormalizeConfig) error {
	entries, err := formatter.ReadRawEntries(cfg.Input)
	if err != nil {
		return fmt.Errorf("read raw entries: %w", err)
	}

	doc, err := BuildNormalizedDocument(entries, cfg, time.Now())
	if err != nil {
		return err
	}
	for _, e := range doc.Ekadashis {
		timing := e.Timing[cfg.Region]
		if timing.ParanaStart == nil || timing.ParanaEnd == nil {
			log.Warn().Str("name", e.Name[cfg.Language]).Str("date", timing.Date).Msg("parana window incomplete")
		}
	}

	if err := formatter.WriteDocument(cfg.Output, doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	log.Info().Str("path", cfg.Output).Int("entries", len(doc.Ekadashis)).Msg("normalized dataset written")

	if cfg.ICSOutput != "" {
		cal, err := ics.BuildCalendar(doc, cfg.Region, cfg.Language)
		if err != nil {
			return fmt.Errorf("build calendar: %w", err)
		}
		if err := ics.WriteCalendar(cfg.ICSOutput, cal); err != nil {
			return fmt.Errorf("write calendar: %w", err)
		}
		log.Info().Str("path", cfg.ICSOutput).Msg("ics calendar written")
	}
	return nil
}
