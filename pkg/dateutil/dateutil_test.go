package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC), // Monday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC), // Sunday
			expected: time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),  // Previous Monday
		},
		{
			name:     "New Year on Friday walks back into December",
			input:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2020, 12, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"Monday is 1", Date(2025, 1, 13), 1},
		{"Wednesday is 3", Date(2025, 1, 15), 3},
		{"Saturday is 6", Date(2025, 1, 18), 6},
		{"Sunday is 7", Date(2025, 1, 19), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISOWeekday(tt.input); got != tt.want {
				t.Errorf("ISOWeekday(%v) = %d, want %d",
					tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestGetWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		wantYear int
		wantWeek int
	}{
		{
			name:     "Mid January 2025",
			input:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 3,
		},
		{
			name:     "Start of year",
			input:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 1,
		},
		{
			name:     "Late December in next ISO year",
			input:    time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantYear: 2025,
			wantWeek: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := GetWeekNumber(tt.input)

			if year != tt.wantYear || week != tt.wantWeek {
				t.Errorf("GetWeekNumber(%v) = (%v, %v), want (%v, %v)",
					tt.input, year, week, tt.wantYear, tt.wantWeek)
			}
		})
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Monday is weekday", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), true},
		{"Friday is weekday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), true},
		{"Saturday is not weekday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), false},
		{"Sunday is not weekday", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekday(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestNthWeekday(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
	}{
		{"Second Sunday of May 2025", 2025, time.May, time.Sunday, 2, "2025-05-11"},
		{"Third Sunday of June 2025", 2025, time.June, time.Sunday, 3, "2025-06-15"},
		{"Month starting on the weekday", 2025, time.June, time.Sunday, 1, "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(NthWeekday(tt.year, tt.month, tt.weekday, tt.n))
			if got != tt.want {
				t.Errorf("NthWeekday() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLastWeekday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{"Last Sunday of March 2025", 2025, time.March, "2025-03-30"},
		{"Last Sunday of October 2025", 2025, time.October, "2025-10-26"},
		{"Month ending on Sunday", 2024, time.March, "2024-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(LastWeekday(tt.year, tt.month, time.Sunday))
			if got != tt.want {
				t.Errorf("LastWeekday() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Basic format YYYYMMDD",
			"19420618",
			time.Date(1942, 6, 18, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Dutch format DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"ISO with time",
			"2025-01-15T10:30:00",
			time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"18 june",
			time.Time{},
			true,
		},
		{
			"Impossible day",
			"2025-02-30",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
