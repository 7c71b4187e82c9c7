package domain

import "strings"

// NormalizeDate strips the time component from an ISO datetime, so
// "2025-06-01T10:30:00.000Z" and "2025-06-01" compare equal.
func NormalizeDate(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}

// TimeFromDate extracts "HH:MM" from a timestamp-style date, or "" when the
// date carries no time component.
func TimeFromDate(date string) string {
	i := strings.IndexByte(date, 'T')
	if i < 0 || len(date) < i+6 {
		return ""
	}
	return date[i+1 : i+6]
}
