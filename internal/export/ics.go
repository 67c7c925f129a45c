// Package export writes calendar holidays as iCalendar (RFC 5545) feeds
package export

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
	"github.com/username/weekcal/pkg/dateutil"
)

const (
	prodID    = "-//weekcal//Week calendar//EN"
	uidDomain = "weekcal"

	propCalName  = "X-WR-CALNAME"
	propCalScale = "CALSCALE"
)

// Names translates holiday labels and the calendar title
type Names interface {
	Holiday(h calendar.Holiday) string
	Title(year int, paper calendar.PaperSize) string
}

// ICSWriter writes all-day events for every holiday printed in a calendar
type ICSWriter struct {
	names  Names
	logger *zap.Logger
	now    func() time.Time
}

// NewICSWriter creates a new ICSWriter
func NewICSWriter(names Names, logger *zap.Logger) *ICSWriter {
	return &ICSWriter{
		names:  names,
		logger: logger,
		now:    time.Now,
	}
}

// Write encodes the holidays of res that fall inside its weeks. Each entry
// becomes an all-day VEVENT with a UID derived from date, rule and label, so
// re-exporting the same year yields the same UIDs. Repeated entries get an
// occurrence suffix in the hash.
func (iw *ICSWriter) Write(w io.Writer, res *calendar.Result) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(propCalScale, "GREGORIAN")
	cal.Props.SetText(propCalName, iw.names.Title(res.Year, res.PaperSize))

	first, last := span(res)
	stamp := iw.now().UTC()

	count := 0
	seen := make(map[string]int)
	for _, key := range res.Holidays.Dates() {
		date, err := time.Parse(dateutil.KeyLayout, key)
		if err != nil || date.Before(first) || date.After(last) {
			continue
		}

		for _, h := range res.Holidays[key] {
			summary := iw.names.Holiday(h)
			id := uid(date, h, summary)
			if n := seen[id]; n > 0 {
				seen[id]++
				id = uid(date, h, fmt.Sprintf("%s#%d", summary, n))
			} else {
				seen[id] = 1
			}
			cal.Children = append(cal.Children, newEvent(date, h, summary, id, stamp).Component)
			count++
		}
	}

	if count == 0 {
		return fmt.Errorf("no holidays between %s and %s", dateutil.Key(first), dateutil.Key(last))
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	iw.logger.Debug("Calendar exported",
		zap.Int("year", res.Year),
		zap.Int("events", count))

	return nil
}

func newEvent(date time.Time, h calendar.Holiday, summary, id string, stamp time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, id)
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetText(ical.PropCategories, h.Kind.String())
	event.Props.SetText(ical.PropTransparency, "TRANSPARENT")

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(date)
	event.Props.Set(start)

	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDate(date.AddDate(0, 0, 1))
	event.Props.Set(end)

	return event
}

func uid(date time.Time, h calendar.Holiday, summary string) string {
	sum := sha256.Sum256([]byte(dateutil.Key(date) + "|" + h.Key + "|" + summary))
	return fmt.Sprintf("%x@%s", sum[:12], uidDomain)
}

// span returns the first Monday and last Sunday of the calendar
func span(res *calendar.Result) (time.Time, time.Time) {
	if len(res.Weeks) == 0 {
		return time.Time{}, time.Time{}
	}
	return res.Weeks[0].Monday(), res.Weeks[len(res.Weeks)-1].Sunday()
}
