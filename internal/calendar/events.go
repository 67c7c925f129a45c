package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/weekcal/pkg/dateutil"
)

// RecurringEvent is a caller-supplied anniversary: the date it first happened
// (YYYY-MM-DD) and the name to print.
type RecurringEvent struct {
	Date string `yaml:"date" json:"date"`
	Name string `yaml:"name" json:"name"`
}

// Anniversary is a validated RecurringEvent
type Anniversary struct {
	Anchor time.Time
	Name   string
}

// ParseRecurringEvents validates events and converts them to anniversaries.
// The input slice is not modified.
func ParseRecurringEvents(events []RecurringEvent) ([]Anniversary, error) {
	out := make([]Anniversary, 0, len(events))
	for i, ev := range events {
		anchor, err := time.Parse(dateutil.KeyLayout, strings.TrimSpace(ev.Date))
		if err != nil {
			return nil, &ValidationError{
				Kind:  ErrInvalidEventSpec,
				Field: fmt.Sprintf("events[%d].date", i),
				Value: ev.Date,
				Err:   err,
			}
		}

		name := strings.TrimSpace(ev.Name)
		if name == "" {
			return nil, &ValidationError{
				Kind:  ErrInvalidEventSpec,
				Field: fmt.Sprintf("events[%d].name", i),
				Value: ev.Name,
			}
		}

		out = append(out, Anniversary{Anchor: anchor, Name: name})
	}
	return out, nil
}
