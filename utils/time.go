package utils

import (
	"strings"
	"time"
)

// Common layouts.
const (
	DateFormat     = "2006-01-02"
	FileDateFormat = "20060102"
)

// Now returns the current time in UTC. Every write stamps with it.
func Now() time.Time {
	return time.Now().UTC()
}

// Today returns midnight UTC of the current day.
func Today() time.Time {
	return TruncateDay(time.Now().UTC())
}

// TruncateDay drops the clock part and normalizes to UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string. Blank input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return nil, err
	}
	t = TruncateDay(t)
	return &t, nil
}

// FormatDate renders a nullable date, empty when absent.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
