package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePadding(t *testing.T) {
	tests := []struct {
		weeks int
		want  int
	}{
		{52, 3},
		{53, 2},
		{54, 1},
		{55, 0},
		{0, 3},
		{-1, 3},
	}

	for _, tt := range tests {
		got := ComputePadding(tt.weeks)
		assert.Equal(t, tt.want, got, "ComputePadding(%d)", tt.weeks)
		if tt.weeks >= 0 {
			assert.Zero(t, (tt.weeks+NotesPages+got)%SheetMultiple)
			assert.Equal(t, tt.weeks+NotesPages+got, PageCount(tt.weeks))
		}
	}
}

func TestBuildCalendar_Validation(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		paper   PaperSize
		events  []RecurringEvent
		wantErr error
	}{
		{"year below range", 1581, PaperA4, nil, ErrInvalidYear},
		{"year above range", 3001, PaperA4, nil, ErrInvalidYear},
		{"unknown paper", 2025, PaperSize("Letter"), nil, ErrInvalidPaperSize},
		{"lowercase paper", 2025, PaperSize("a4"), nil, ErrInvalidPaperSize},
		{"unparsable anchor", 2025, PaperA5, []RecurringEvent{{Date: "18-06-1942", Name: "X"}}, ErrInvalidEventSpec},
		{"impossible anchor", 2025, PaperA5, []RecurringEvent{{Date: "1942-02-30", Name: "X"}}, ErrInvalidEventSpec},
		{"empty name", 2025, PaperA5, []RecurringEvent{{Date: "1942-06-18", Name: " "}}, ErrInvalidEventSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := BuildCalendar(tt.year, tt.paper, false, tt.events)

			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestBuildCalendar_Bounds(t *testing.T) {
	for _, year := range []int{MinYear, MaxYear} {
		res, err := BuildCalendar(year, PaperA4, false, nil)
		require.NoError(t, err)
		assert.Equal(t, year, res.Year)
		assert.NotEmpty(t, res.Weeks)
	}
}

func TestBuildCalendar_Idempotent(t *testing.T) {
	events := []RecurringEvent{{Date: "1942-06-18", Name: "Sir Paul McCartney"}}
	snapshot := append([]RecurringEvent(nil), events...)

	first, err := BuildCalendar(2025, PaperA5, true, events)
	require.NoError(t, err)
	second, err := BuildCalendar(2025, PaperA5, true, events)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, events)
	assert.Equal(t, 53, len(first.Weeks))
	assert.Equal(t, 2, first.Padding())
	assert.Equal(t, 56, first.PageCount())
	assert.Equal(t, []string{"Sir Paul McCartney (83)"}, labelsOn(first.Holidays, "2025-06-18"))
}

func TestParsePaperSize(t *testing.T) {
	p, err := ParsePaperSize(" a5 ")
	require.NoError(t, err)
	assert.Equal(t, PaperA5, p)

	_, err = ParsePaperSize("letter")
	assert.ErrorIs(t, err, ErrInvalidPaperSize)
}

func TestBuildMany(t *testing.T) {
	years := []int{2026, 2024, 2025}

	results, err := BuildMany(context.Background(), years, Options{PaperSize: PaperA4})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, years[i], res.Year)

		single, err := BuildCalendar(years[i], PaperA4, false, nil)
		require.NoError(t, err)
		assert.Equal(t, single, res)
	}

	_, err = BuildMany(context.Background(), []int{2025, 3001}, Options{PaperSize: PaperA4})
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestValidationError_Message(t *testing.T) {
	_, err := BuildCalendar(1581, PaperA4, false, nil)
	assert.EqualError(t, err, "invalid year: year=1581")
}
