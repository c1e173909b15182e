package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:00", "14:00:00"},
		{"14:00:30", "14:00:30"},
		{"09:05", "09:05:00"},
		{"2026-09-01T14:00:00Z", "14:00:00"},
		{"2026-09-01T14:00:00", "14:00:00"},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "25:00", "14:60", "nope", "14h30"} {
		_, err := ParseClock(in)
		require.Error(t, err, in)
	}
}

func TestParseClockOrdering(t *testing.T) {
	// normalized values must compare chronologically as strings
	padded, err := ParseClock("9:05")
	require.NoError(t, err)
	require.Equal(t, "09:05:00", padded)

	start, err := ParseClock("09:30")
	require.NoError(t, err)
	end, err := ParseClock("10:00")
	require.NoError(t, err)
	require.True(t, start < end)
}

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2026-09-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseISODate("2026-09-01T14:00:00")
	require.NoError(t, err)
	require.Equal(t, 1, d.Day())

	for _, in := range []string{"", "01/09/2026", "2026-13-01", "nope"} {
		_, err := ParseISODate(in)
		require.Error(t, err, in)
	}
}
