package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/username/weekcal/pkg/dateutil"
)

// Workdays answers working-day questions for the dates covered by a
// HolidayMap. Monday to Friday are working days unless a day-off holiday
// falls on them.
type Workdays struct {
	calendar *cal.BusinessCalendar
}

// NewWorkdays builds a business calendar from the day-off entries of holidays
func NewWorkdays(holidays HolidayMap) *Workdays {
	bc := cal.NewBusinessCalendar()

	for _, key := range holidays.Dates() {
		date, err := time.Parse(dateutil.KeyLayout, key)
		if err != nil {
			continue
		}
		for _, h := range holidays[key] {
			if !h.DayOff {
				continue
			}
			bc.AddHoliday(&cal.Holiday{
				Name: h.Name,
				Func: onDate(date),
			})
		}
	}

	return &Workdays{calendar: bc}
}

// onDate pins a holiday to a single date; other years yield the zero time
func onDate(date time.Time) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		if year != date.Year() {
			return time.Time{}
		}
		return date
	}
}

// IsDayOff reports whether date is a day-off holiday and returns its name
func (w *Workdays) IsDayOff(date time.Time) (bool, string) {
	actual, observed, h := w.calendar.IsHoliday(date)
	if !actual && !observed {
		return false, ""
	}
	return true, h.Name
}

// IsWorkday reports whether date is Monday-Friday and not a day off
func (w *Workdays) IsWorkday(date time.Time) bool {
	if !dateutil.IsWeekday(date) {
		return false
	}
	off, _ := w.IsDayOff(date)
	return !off
}

// Count returns the number of working days in week
func (w *Workdays) Count(week Week) int {
	n := 0
	for _, d := range week.Days {
		if w.IsWorkday(d.Date) {
			n++
		}
	}
	return n
}
