package calendar

import (
	"time"

	"github.com/username/weekcal/pkg/dateutil"
)

// AnniversaryKey is the rule key of every recurring event entry
const AnniversaryKey = "anniversary"

// fixedRule is a holiday on the same month and day every year.
// YearOffset selects the year relative to the calendar year, so the
// Christmas days before and the New Year's Day after are shown too.
type fixedRule struct {
	Key        string
	Name       string
	YearOffset int
	Month      time.Month
	Day        int
	SundayDays int // days to move the observed date when it falls on Sunday
	DayOff     bool
}

func (r fixedRule) date(year int) time.Time {
	d := dateutil.Date(year+r.YearOffset, r.Month, r.Day)
	if r.SundayDays != 0 && d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, r.SundayDays)
	}
	return d
}

var fixedRules = []fixedRule{
	{Key: "christmas-day", Name: "Christmas Day", YearOffset: -1, Month: time.December, Day: 25, DayOff: true},
	{Key: "boxing-day", Name: "Second Day of Christmas", YearOffset: -1, Month: time.December, Day: 26, DayOff: true},
	{Key: "new-years-day", Name: "New Year's Day", Month: time.January, Day: 1, DayOff: true},
	{Key: "valentines-day", Name: "Valentine's Day", Month: time.February, Day: 14},
	{Key: "kings-day", Name: "King's Day", Month: time.April, Day: 27, SundayDays: -1, DayOff: true},
	{Key: "remembrance-day", Name: "Remembrance Day", Month: time.May, Day: 4},
	{Key: "liberation-day", Name: "Liberation Day", Month: time.May, Day: 5},
	{Key: "christmas-day", Name: "Christmas Day", Month: time.December, Day: 25, DayOff: true},
	{Key: "boxing-day", Name: "Second Day of Christmas", Month: time.December, Day: 26, DayOff: true},
	{Key: "new-years-day", Name: "New Year's Day", YearOffset: 1, Month: time.January, Day: 1, DayOff: true},
}

// easterRule is a holiday at a fixed number of days from Easter Sunday
type easterRule struct {
	Key    string
	Name   string
	Offset int
	DayOff bool
}

var easterOffsets = []easterRule{
	{Key: "carnival-sunday", Name: "Carnival Sunday", Offset: -49},
	{Key: "ash-wednesday", Name: "Ash Wednesday", Offset: -46},
	{Key: "good-friday", Name: "Good Friday", Offset: -2},
	{Key: "easter-sunday", Name: "Easter Sunday", Offset: 0, DayOff: true},
	{Key: "easter-monday", Name: "Easter Monday", Offset: 1, DayOff: true},
	{Key: "ascension-day", Name: "Ascension Day", Offset: 39, DayOff: true},
	{Key: "whit-sunday", Name: "Whit Sunday", Offset: 49, DayOff: true},
	{Key: "whit-monday", Name: "Whit Monday", Offset: 50, DayOff: true},
}

// floatingRule is a holiday computed from weekday positions within a month
type floatingRule struct {
	Key  string
	Name string
	Calc func(year int) time.Time
}

var floatingRules = []floatingRule{
	{Key: "mothers-day", Name: "Mother's Day", Calc: func(year int) time.Time {
		return dateutil.NthWeekday(year, time.May, time.Sunday, 2)
	}},
	{Key: "fathers-day", Name: "Father's Day", Calc: func(year int) time.Time {
		return dateutil.NthWeekday(year, time.June, time.Sunday, 3)
	}},
	{Key: "summer-time", Name: "Summer time starts (2:00 → 3:00)", Calc: func(year int) time.Time {
		return dateutil.LastWeekday(year, time.March, time.Sunday)
	}},
	{Key: "winter-time", Name: "Summer time ends (3:00 → 2:00)", Calc: func(year int) time.Time {
		return dateutil.LastWeekday(year, time.October, time.Sunday)
	}},
}

// RuleKeys returns the key of every built-in rule, in evaluation order,
// without duplicates.
func RuleKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, r := range fixedRules {
		add(r.Key)
	}
	for _, r := range easterOffsets {
		add(r.Key)
	}
	for _, r := range floatingRules {
		add(r.Key)
	}
	return keys
}
