package dataset

// RawEntry is one element of the scraped input array consumed by the
// normalizer. Times are 12-hour wall-clock strings such as "05:35 AM".
type RawEntry struct {
	Name        string `json:"name"`
	FastingDate string `json:"fasting_date"`
	ParanaDate  string `json:"parana_date"`
	ParanaStart string `json:"parana_start"`
	ParanaEnd   string `json:"parana_end"`
}

// Timing is the per-timezone timing block of an entry. Instant fields are
// pointers: nil serializes as JSON null and means the value could not be
// resolved from the source. FastingStart is omitted entirely when absent;
// the normalizer never emits it because no timing source for it was scraped.
type Timing struct {
	Date         string  `json:"date" yaml:"date"`
	FastingStart *string `json:"fasting_start,omitempty" yaml:"fasting_start,omitempty"`
	ParanaStart  *string `json:"parana_start" yaml:"parana_start"`
	ParanaEnd    *string `json:"parana_end" yaml:"parana_end"`
}

// Ekadashi is a single fasting-day entry.
type Ekadashi struct {
	ID     int                `json:"id"`
	Name   map[string]string  `json:"name"`
	Timing map[string]*Timing `json:"timing"`
}

// DateRange bounds the calendar dates covered by a document.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimezoneInfo describes one timezone label of the document.
type TimezoneInfo struct {
	Cities []string `json:"cities"`
}

// Document is the top-level dataset document.
type Document struct {
	Version   string                   `json:"version"`
	Generated string                   `json:"generated"`
	Source    string                   `json:"source"`
	Year      int                      `json:"year"`
	Notes     string                   `json:"notes"`
	DateRange *DateRange               `json:"date_range,omitempty"`
	Timezones map[string]*TimezoneInfo `json:"timezones,omitempty"`
	Ekadashis []*Ekadashi              `json:"ekadashis"`
}
