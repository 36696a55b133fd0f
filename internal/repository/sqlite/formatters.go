package sqlite

import (
	"time"
)

// TimestampLayout is the minute-resolution layout used for all timestamps
// stored in the database (task created/updated/deadline, shift start/end).
const TimestampLayout = "2006-01-02 15:04"

// FormatTimestamp formats a time.Time value in the storage layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses a storage-layout timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.Local)
}
