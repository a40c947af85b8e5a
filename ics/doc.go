// Package ics exports a normalized dataset document as an iCalendar feed.
//
// Each Ekadashi entry becomes one all-day VEVENT on its fasting date, with
// the parana window carried in the event description when both instants were
// resolved.
package ics
