package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// normalizeTimestamp drops the precision RFC3339 storage cannot keep, so the
// value handed back from Insert equals the value later read by Get.
func normalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
