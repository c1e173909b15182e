package model

import (
	"fmt"
	"time"
)

// ParseClock normalizes a clock value to "HH:MM:SS". It accepts "HH:MM",
// "HH:MM:SS", or a full datetime (the time-of-day part is taken), matching
// the formats that reach the API and the queue.
func ParseClock(s string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid time value %q", s)
}

// ParseISODate parses "YYYY-MM-DD", tolerating a trailing time component.
func ParseISODate(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q", s)
	}
	return d, nil
}
