package calendar

import (
	"time"

	"github.com/username/weekcal/pkg/dateutil"
)

// BuildWeeks returns every ISO week that overlaps the given year, in
// chronological order. Boundary weeks that spill into the previous or next
// year are included whole.
//
// Walking starts at the Monday on or before January 1st and keeps emitting
// 7-day chunks while the chunk's Monday is on or before January 1st, belongs
// to ISO year `year`, or is still before January 1st of the next year.
func BuildWeeks(year int) []Week {
	firstJan := dateutil.Date(year, time.January, 1)
	nextFirstJan := dateutil.Date(year+1, time.January, 1)

	weeks := make([]Week, 0, 54)
	day := dateutil.StartOfWeek(firstJan)

	for {
		isoYear, isoWeek := dateutil.GetWeekNumber(day)
		if day.After(firstJan) && isoYear != year && !day.Before(nextFirstJan) {
			break
		}

		week := Week{Year: isoYear, Number: isoWeek}

		for i := range week.Days {
			week.Days[i] = Day{
				Date:    day,
				Weekday: dateutil.ISOWeekday(day),
			}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}

	return weeks
}
