package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the layout used for date keys (YYYY-MM-DD)
const KeyLayout = "2006-01-02"

// Date returns midnight UTC of the given calendar day.
// Out-of-range values are normalized the way time.Date does (Feb 29 -> Mar 1).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// ISOWeekday returns the ISO 8601 weekday index (1=Monday .. 7=Sunday)
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	day := StartOfDay(date)
	for ISOWeekday(day) > 1 {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// GetWeekNumber returns the ISO week number for the given date
func GetWeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	return ISOWeekday(date) <= 5
}

// NthWeekday returns the n-th occurrence (1-based) of weekday in the given month
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	day := Date(year, month, 1)
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}
	return day.AddDate(0, 0, 7*(n-1))
}

// LastWeekday returns the last occurrence of weekday in the given month
func LastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	day := Date(year, month+1, 0)
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// Key formats a date as YYYY-MM-DD
func Key(date time.Time) string {
	return date.Format(KeyLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		KeyLayout,
		"20060102",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", dateStr)
}
