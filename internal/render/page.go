// Package render lays out a calendar.Result as booklet pages and writes them
// as plain text, JSON or a styled terminal preview.
package render

import (
	"fmt"
	"time"

	"github.com/username/weekcal/internal/calendar"
)

// Names is the localized name table used for headings and labels
type Names interface {
	Month(m time.Month) string
	MonthShort(m time.Month) string
	Weekday(isoWeekday int) string
	Labels(holidays []calendar.Holiday) []string
	Title(year int, paper calendar.PaperSize) string
	WeekHeading(number int, month string) string
	Notes() string
	Workdays(count int) string
}

// PageKind distinguishes the pages of a booklet
type PageKind string

const (
	PageWeek  PageKind = "week"
	PageNotes PageKind = "notes"
	PageBlank PageKind = "blank"
)

// DayRow is one line of a week page
type DayRow struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Day     int      `json:"day"`
	Labels  []string `json:"labels,omitempty"`
	DayOff  bool     `json:"day_off,omitempty"`
}

// Page is a single booklet page
type Page struct {
	Number   int      `json:"number"`
	Kind     PageKind `json:"kind"`
	Week     string   `json:"week,omitempty"`
	Heading  string   `json:"heading,omitempty"`
	Caption  string   `json:"caption,omitempty"`
	Workdays string   `json:"workdays,omitempty"`
	Rows     []DayRow `json:"rows,omitempty"`
}

// Document is the full page sequence of one calendar year
type Document struct {
	Title     string             `json:"title"`
	Year      int                `json:"year"`
	PaperSize calendar.PaperSize `json:"paper_size"`
	Pages     []Page             `json:"pages"`
}

// Compose turns a calendar into pages: one per week, the notes page, then
// blank padding so the total is a multiple of four.
func Compose(res *calendar.Result, names Names) *Document {
	wd := calendar.NewWorkdays(res.Holidays)

	doc := &Document{
		Title:     names.Title(res.Year, res.PaperSize),
		Year:      res.Year,
		PaperSize: res.PaperSize,
		Pages:     make([]Page, 0, res.PageCount()),
	}

	for _, w := range res.Weeks {
		doc.Pages = append(doc.Pages, weekPage(w, res.Holidays, wd, names))
	}
	for i := 0; i < calendar.NotesPages; i++ {
		doc.Pages = append(doc.Pages, Page{Kind: PageNotes, Heading: names.Notes()})
	}
	for i := 0; i < res.Padding(); i++ {
		doc.Pages = append(doc.Pages, Page{Kind: PageBlank})
	}

	for i := range doc.Pages {
		doc.Pages[i].Number = i + 1
	}
	return doc
}

func weekPage(w calendar.Week, holidays calendar.HolidayMap, wd *calendar.Workdays, names Names) Page {
	monday, sunday := w.Monday(), w.Sunday()

	page := Page{
		Kind:     PageWeek,
		Week:     w.Key(),
		Heading:  names.WeekHeading(w.Number, monthSpan(monday, sunday, names)),
		Caption:  yearSpan(monday, sunday),
		Workdays: names.Workdays(wd.Count(w)),
		Rows:     make([]DayRow, 0, len(w.Days)),
	}

	for _, d := range w.Days {
		off, _ := wd.IsDayOff(d.Date)
		page.Rows = append(page.Rows, DayRow{
			Date:    d.Key(),
			Weekday: names.Weekday(d.Weekday),
			Day:     d.Date.Day(),
			Labels:  names.Labels(holidays.On(d.Date)),
			DayOff:  off,
		})
	}
	return page
}

// monthSpan returns the full month name, or "jan / feb" when the week
// crosses a month boundary
func monthSpan(monday, sunday time.Time, names Names) string {
	if monday.Month() == sunday.Month() {
		return names.Month(monday.Month())
	}
	return names.MonthShort(monday.Month()) + " / " + names.MonthShort(sunday.Month())
}

// yearSpan returns "2025", or "2025/26" when the week crosses New Year
func yearSpan(monday, sunday time.Time) string {
	if monday.Year() == sunday.Year() {
		return fmt.Sprintf("%d", monday.Year())
	}
	return fmt.Sprintf("%d/%02d", monday.Year(), sunday.Year()%100)
}
