package model

import (
	"strings"
	"time"
)

const (
	// DateLayout is the day/month/year format used for movement dates.
	DateLayout = "02/01/2006"
	// TimestampLayout is the format of entry timestamps.
	TimestampLayout = "02/01/2006 15:04:05"

	// Permissive read layouts (allow single-digit day and month).
	dateReadLayout      = "2/1/2006"
	timestampReadLayout = "2/1/2006 15:04:05"
)

// ParseDate parses a day/month/year date. The result is midnight UTC so
// dates compare at day granularity.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateReadLayout, strings.TrimSpace(s))
}

// FormatDate formats a movement date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseTimestamp parses an entry timestamp in local time.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(timestampReadLayout, strings.TrimSpace(s), time.Local)
}

// FormatTimestamp formats an entry timestamp as DD/MM/YYYY HH:MM:SS.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
