// Package events loads recurring private events (birthdays, wedding days)
// from local files, vCard address books and remote URLs.
package events

import (
	"context"
	"errors"
	"strings"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/pkg/dateutil"
)

// ErrSourceUnavailable is returned when a source cannot be read at all
var ErrSourceUnavailable = errors.New("event source unavailable")

// Source yields recurring events. Events are returned as read; validation
// happens when the calendar is built.
type Source interface {
	Events(ctx context.Context) ([]calendar.RecurringEvent, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]calendar.RecurringEvent, error)

// Events implements Source
func (f SourceFunc) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	return f(ctx)
}

// Static returns a Source that always yields events
func Static(events []calendar.RecurringEvent) Source {
	return SourceFunc(func(context.Context) ([]calendar.RecurringEvent, error) {
		return append([]calendar.RecurringEvent(nil), events...), nil
	})
}

type multiSource []Source

// Merge concatenates the events of all sources in order. An event whose
// date and name were already seen is dropped, so a person listed in two
// sources is printed once. The first error aborts the merge.
func Merge(sources ...Source) Source {
	var ms multiSource
	for _, s := range sources {
		if s != nil {
			ms = append(ms, s)
		}
	}
	return ms
}

func (ms multiSource) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	var out []calendar.RecurringEvent
	seen := make(map[calendar.RecurringEvent]bool)
	for _, s := range ms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		evs, err := s.Events(ctx)
		if err != nil {
			return nil, err
		}
		for _, ev := range evs {
			key := calendar.RecurringEvent{Date: ev.Date, Name: strings.TrimSpace(ev.Name)}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, ev)
		}
	}
	return out, nil
}

// normalizeDate rewrites the date formats found in address books and
// hand-written files to YYYY-MM-DD. Unrecognized values are returned
// unchanged so that calendar validation reports them.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	t, err := dateutil.ParseDate(value)
	if err != nil {
		return value
	}
	return dateutil.Key(t)
}
