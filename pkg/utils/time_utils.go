package utils

import (
	"time"
)

const (
	// UTCTimestampLayout renders a unix timestamp as "2024-01-02 15:04:05 UTC"
	UTCTimestampLayout = "2006-01-02 15:04:05 UTC"
	// DateLayout renders a calendar date
	DateLayout = "2006-01-02"
)

// IsFresh reports whether a value cached at cachedAt is still within ttl at now.
// The boundary is inclusive.
func IsFresh(cachedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(cachedAt) <= ttl
}

// FormatUnixUTC formats a unix timestamp in seconds with UTCTimestampLayout
func FormatUnixUTC(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(UTCTimestampLayout)
}

// FormatUnixDate formats a unix timestamp in seconds as a UTC calendar date
func FormatUnixDate(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(DateLayout)
}

// RFC3339UTC formats t in UTC with RFC3339
func RFC3339UTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
