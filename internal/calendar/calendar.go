// Package calendar computes the week partition, holidays and page layout of a
// printable week calendar. Everything in this package is pure: no I/O, no
// logging, and no state shared between calls.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/weekcal/pkg/dateutil"
)

// Year bounds accepted by BuildCalendar
const (
	MinYear = 1582
	MaxYear = 3000
)

// PaperSize is the paper format of the printed calendar
type PaperSize string

const (
	PaperA4 PaperSize = "A4"
	PaperA5 PaperSize = "A5"
)

// Valid reports whether p is one of the supported paper sizes
func (p PaperSize) Valid() bool {
	return p == PaperA4 || p == PaperA5
}

// ParsePaperSize parses a paper size name, ignoring case
func ParsePaperSize(s string) (PaperSize, error) {
	p := PaperSize(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", &ValidationError{Kind: ErrInvalidPaperSize, Field: "paper_size", Value: s}
	}
	return p, nil
}

// Day is a single calendar day
type Day struct {
	Date    time.Time // midnight UTC
	Weekday int       // ISO weekday, 1=Monday .. 7=Sunday
}

// Key returns the YYYY-MM-DD key used by HolidayMap
func (d Day) Key() string {
	return dateutil.Key(d.Date)
}

// Week is a Monday-to-Sunday run of days identified by its ISO year and number
type Week struct {
	Year   int
	Number int
	Days   [7]Day
}

// Key returns the ISO week key, e.g. "2025-W17"
func (w Week) Key() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Number)
}

// Monday returns the first day of the week
func (w Week) Monday() time.Time {
	return w.Days[0].Date
}

// Sunday returns the last day of the week
func (w Week) Sunday() time.Time {
	return w.Days[6].Date
}

// Result is the complete calendar for one year
type Result struct {
	Year      int
	PaperSize PaperSize
	Weeks     []Week
	Holidays  HolidayMap
}

// PageCount returns the number of pages including the notes page and padding
func (r *Result) PageCount() int {
	return PageCount(len(r.Weeks))
}

// Padding returns the number of blank pages appended after the notes page
func (r *Result) Padding() int {
	return ComputePadding(len(r.Weeks))
}
