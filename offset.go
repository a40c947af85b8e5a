package ekadashi

import (
	"fmt"
	"time"

	"github.com/vedicdata/ekadashi-tools/config"
)

// localBoundaryLayout is the shape of DST boundary instants in config.
const localBoundaryLayout = "2006-01-02T15:04"

// DSTRule resolves UTC offsets for naive local instants of one region and
// one calendar year. Start and End are zone-less wall-clock boundaries.
type DSTRule struct {
	Start    time.Time
	End      time.Time
	Daylight string
	Standard string
}

// NewDSTRule builds a rule from its configuration.
func NewDSTRule(cfg config.DSTConfig) (DSTRule, error) {
	start, err := time.Parse(localBoundaryLayout, cfg.Start)
	if err != nil {
		return DSTRule{}, fmt.Errorf("dst start: %w", err)
	}
	end, err := time.Parse(localBoundaryLayout, cfg.End)
	if err != nil {
		return DSTRule{}, fmt.Errorf("dst end: %w", err)
	}
	if !end.After(start) {
		return DSTRule{}, fmt.Errorf("dst end %s is not after start %s", cfg.End, cfg.Start)
	}
	return DSTRule{Start: start, End: end, Daylight: cfg.DaylightOffset, Standard: cfg.StandardOffset}, nil
}

// Offset returns the signed UTC offset for a naive local instant. The DST
// window is half-open: the start boundary itself is daylight time, the end
// boundary itself is not. Total over any instant.
func (r DSTRule) Offset(t time.Time) string {
	if !t.Before(r.Start) && t.Before(r.End) {
		return r.Daylight
	}
	return r.Standard
}
