package calendar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Options holds the per-request inputs besides the year
type Options struct {
	PaperSize        PaperSize
	IncludeRecurring bool
	Events           []RecurringEvent
}

// BuildCalendar validates its inputs and computes the weeks and holidays of
// year. On error no partial result is returned.
func BuildCalendar(year int, paper PaperSize, includeRecurring bool, events []RecurringEvent) (*Result, error) {
	if year < MinYear || year > MaxYear {
		return nil, &ValidationError{Kind: ErrInvalidYear, Field: "year", Value: year}
	}
	if !paper.Valid() {
		return nil, &ValidationError{Kind: ErrInvalidPaperSize, Field: "paper_size", Value: string(paper)}
	}

	anniversaries, err := ParseRecurringEvents(events)
	if err != nil {
		return nil, err
	}

	return &Result{
		Year:      year,
		PaperSize: paper,
		Weeks:     BuildWeeks(year),
		Holidays:  BuildHolidays(year, anniversaries, includeRecurring),
	}, nil
}

// Build is BuildCalendar with the inputs bundled in Options
func Build(year int, opts Options) (*Result, error) {
	return BuildCalendar(year, opts.PaperSize, opts.IncludeRecurring, opts.Events)
}

// BuildMany builds the calendars of several years concurrently.
// Results are returned in the order of years; the first error wins.
func BuildMany(ctx context.Context, years []int, opts Options) ([]*Result, error) {
	results := make([]*Result, len(years))
	g, ctx := errgroup.WithContext(ctx)

	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Build(year, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
