package flake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "local morning",
			input:    time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local),
			expected: "2024-01-15 09:30:00",
		},
		{
			name:     "afternoon uses 24 hour clock",
			input:    time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC),
			expected: "2023-11-14 22:13:20",
		},
		{
			name:     "zero padded",
			input:    time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC),
			expected: "2001-02-03 04:05:06",
		},
		{
			name:     "no zone suffix",
			input:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			expected: "2024-06-01 00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateTime(tt.input))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		then     time.Time
		expected int
	}{
		{name: "same instant", then: now, expected: 0},
		{name: "under a day", then: now.Add(-23 * time.Hour), expected: 0},
		{name: "exactly one day", then: now.Add(-24 * time.Hour), expected: 1},
		{name: "ten and a half days", then: now.Add(-252 * time.Hour), expected: 10},
		{name: "one hour in the future", then: now.Add(time.Hour), expected: -1},
		{name: "exactly two days in the future", then: now.Add(48 * time.Hour), expected: -2},
		{name: "two and a bit days in the future", then: now.Add(49 * time.Hour), expected: -3},
		{name: "half a second short of a day", then: now.Add(-24*time.Hour + 500*time.Millisecond), expected: 0},
		{name: "half a second in the future", then: now.Add(500 * time.Millisecond), expected: -1},
		{name: "far future", then: time.Unix(100000000000, 0), expected: -1137615},
		{name: "far past", then: time.Unix(-20000000000, 0), expected: 251273},
		{name: "year one", then: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), expected: 738954},
		{name: "year 9999", then: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC), expected: -2913105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(now, tt.then))
		})
	}
}
