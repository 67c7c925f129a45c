package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/weekcal/pkg/dateutil"
)

// Kind tells which rule family produced a holiday
type Kind int

const (
	KindFixed Kind = iota + 1
	KindMoving
	KindFloating
	KindAnniversary
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindMoving:
		return "moving"
	case KindFloating:
		return "floating"
	case KindAnniversary:
		return "anniversary"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Holiday is one labeled entry on a date
type Holiday struct {
	Key    string // stable rule key, used for translation
	Name   string // default (English) name, or the caller's name for anniversaries
	Kind   Kind
	Age    int  // elapsed years, anniversaries only
	DayOff bool // public holiday, not a working day
}

// Label renders the printable label, appending the elapsed years for anniversaries
func (h Holiday) Label() string {
	if h.Kind == KindAnniversary {
		return fmt.Sprintf("%s (%d)", h.Name, h.Age)
	}
	return h.Name
}

// HolidayMap maps YYYY-MM-DD keys to the holidays on that date, in the order
// they were added.
type HolidayMap map[string][]Holiday

// Add appends h to the entries of date
func (m HolidayMap) Add(date time.Time, h Holiday) {
	key := dateutil.Key(date)
	m[key] = append(m[key], h)
}

// On returns the holidays on date
func (m HolidayMap) On(date time.Time) []Holiday {
	return m[dateutil.Key(date)]
}

// Labels returns the printable labels of the holidays on date
func (m HolidayMap) Labels(date time.Time) []string {
	entries := m.On(date)
	if len(entries) == 0 {
		return nil
	}
	labels := make([]string, len(entries))
	for i, h := range entries {
		labels[i] = h.Label()
	}
	return labels
}

// Dates returns all date keys in chronological order
func (m HolidayMap) Dates() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of entries across all dates
func (m HolidayMap) Len() int {
	n := 0
	for _, entries := range m {
		n += len(entries)
	}
	return n
}

// BuildHolidays evaluates the fixed, Easter-relative and floating rules for
// year, followed by the anniversaries when includeRecurring is set.
func BuildHolidays(year int, events []Anniversary, includeRecurring bool) HolidayMap {
	m := make(HolidayMap)

	addFixed(m, year)
	addMoving(m, year)
	addFloating(m, year)

	if includeRecurring {
		addAnniversaries(m, year, events)
	}

	return m
}

func addFixed(m HolidayMap, year int) {
	for _, r := range fixedRules {
		m.Add(r.date(year), Holiday{
			Key:    r.Key,
			Name:   r.Name,
			Kind:   KindFixed,
			DayOff: r.DayOff,
		})
	}
}

func addMoving(m HolidayMap, year int) {
	easter := EasterSunday(year)
	for _, r := range easterOffsets {
		m.Add(easter.AddDate(0, 0, r.Offset), Holiday{
			Key:    r.Key,
			Name:   r.Name,
			Kind:   KindMoving,
			DayOff: r.DayOff,
		})
	}
}

func addFloating(m HolidayMap, year int) {
	for _, r := range floatingRules {
		m.Add(r.Calc(year), Holiday{
			Key:  r.Key,
			Name: r.Name,
			Kind: KindFloating,
		})
	}
}

func addAnniversaries(m HolidayMap, year int, events []Anniversary) {
	for _, ev := range events {
		anchorYear := ev.Anchor.Year()
		if year < anchorYear {
			continue
		}

		for y := year - 1; y <= year+1; y++ {
			if y < anchorYear {
				continue
			}
			m.Add(dateutil.Date(y, ev.Anchor.Month(), ev.Anchor.Day()), Holiday{
				Key:  AnniversaryKey,
				Name: ev.Name,
				Kind: KindAnniversary,
				Age:  y - anchorYear,
			})
		}
	}
}
