package ekadashi

import "time"

// localDateTimeLayout combines a YYYY-MM-DD date with a 12-hour clock time
// and AM/PM marker. The hour may be one or two digits.
const localDateTimeLayout = "2006-01-02 3:04 PM"

// isoLocalLayout is the emitted timestamp shape before the offset suffix.
// Source times carry no seconds component, so seconds are always ":00".
const isoLocalLayout = "2006-01-02T15:04:05"

// CombineLocal parses a calendar date string and a 12-hour wall-clock time
// string into a single zone-less instant. ok is false when either part is
// empty or the combined string does not match the expected shape.
func CombineLocal(dateStr, timeStr string) (time.Time, bool) {
	if dateStr == "" || timeStr == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(localDateTimeLayout, dateStr+" "+timeStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ISOInstant renders a date and time-of-day as an ISO-8601 timestamp carrying
// the UTC offset resolved by rule. A nil result means "no value": empty or
// unparseable input is recovered locally, never surfaced as an error, and
// serializes as JSON null.
func ISOInstant(dateStr, timeStr string, rule DSTRule) *string {
	t, ok := CombineLocal(dateStr, timeStr)
	if !ok {
		return nil
	}
	s := t.Format(isoLocalLayout) + rule.Offset(t)
	return &s
}
