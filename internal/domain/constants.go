package domain

import (
	"fmt"
	"time"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking grid: half-hour slots from 10:00 through 20:00, shop closed
// every Wednesday. Overridable via config.
const (
	DefaultOpenTime            = "10:00"
	DefaultLastSlotTime        = "20:00"
	DefaultSlotIntervalMinutes = 30
)

// DefaultClosedWeekday is the fixed weekly closure day.
const DefaultClosedWeekday = time.Wednesday

// ParseDate parses a plain "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// ParseWeekday converts an English weekday name into time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}
