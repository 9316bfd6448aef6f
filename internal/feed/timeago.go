package feed

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

const recently = "recently"

// TimeFormatter renders t relative to now.
type TimeFormatter func(now, t time.Time) string

// FormatTimeAgo uses minutes, hours, days, months (30 days) and years (365 days).
func FormatTimeAgo(now, t time.Time) string {
	if t.IsZero() {
		return recently
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	switch {
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case days < 30:
		return plural(days, "day")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year")
	}
}

// FormatTimeAgoCoarse stops at days.
func FormatTimeAgoCoarse(now, t time.Time) string {
	if t.IsZero() {
		return recently
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// ParseSourceTime parses the timestamp formats platforms hand back
// (RFC 3339, ISO 8601 with or without zone, unix seconds). Times without a
// zone are taken as UTC.
func ParseSourceTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
