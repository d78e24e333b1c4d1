package utils

import (
	"sehatnama-service/internal/pkg/constvars"
	"time"
)

// ParseDay parses YYYY-MM-DD into midnight UTC, the representation every
// date-only field is stored in.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(constvars.DateLayout, value)
}

// ParseDayOrToday falls back to the current local calendar day when value is empty.
func ParseDayOrToday(value string) (time.Time, error) {
	if value == "" {
		return Today(), nil
	}
	return ParseDay(value)
}

// Today is the current calendar day in the configured local timezone,
// expressed as midnight UTC.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDay(day time.Time) string {
	return day.UTC().Format(constvars.DateLayout)
}

// ClockOf renders the local time of day as HH:MM.
func ClockOf(t time.Time) string {
	return t.In(time.Local).Format(constvars.ClockLayout)
}

// EndOfDay returns the first instant after day.
func EndOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1)
}
