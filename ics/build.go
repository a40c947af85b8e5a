package ics

import (
	"fmt"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/vedicdata/ekadashi-tools/dataset"
)

const dateLayout = "2006-01-02"

// BuildCalendar renders the fasting days of doc as all-day calendar events.
// The timing block under region supplies the fasting date; entries with no
// timing for that region are skipped. A fasting date that does not parse is
// a structural error: it means the document itself is malformed.
func BuildCalendar(doc *dataset.Document, region, language string) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//ekadashi-tools//EN")

	for _, e := range doc.Ekadashis {
		timing := e.Timing[region]
		if timing == nil {
			continue
		}
		day, err := time.Parse(dateLayout, timing.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: bad fasting date %q: %w", e.ID, timing.Date, err)
		}

		ev := cal.AddEvent(fmt.Sprintf("ekadashi-%d-%d@ekadashi-tools", doc.Year, e.ID))
		ev.SetDtStampTime(day)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetSummary(e.Name[language])
		if timing.ParanaStart != nil && timing.ParanaEnd != nil {
			ev.SetDescription(fmt.Sprintf("Parana: %s to %s", *timing.ParanaStart, *timing.ParanaEnd))
		}
	}
	return cal, nil
}

// WriteCalendar serializes cal to path.
func WriteCalendar(path string, cal *ical.Calendar) error {
	return os.WriteFile(path, []byte(cal.Serialize()), 0o644)
}
