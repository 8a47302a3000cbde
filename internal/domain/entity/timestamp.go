package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
)

const day = 24 * time.Hour

// CoerceUTC converts t to UTC. A zero-offset or local time keeps its instant.
func CoerceUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseTimestamp parses an extended ISO-8601 timestamp where a trailing "Z"
// designates UTC, and returns it in UTC.
func ParseTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", types.ErrInvalidTimestamp, value)
	}
	return t.UTC(), nil
}

// DaysBetween returns the whole days from now until end, rounded toward the
// earlier date. An end 1h in the past yields -1.
func DaysBetween(now, end time.Time) int {
	d := CoerceUTC(end).Sub(CoerceUTC(now))
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

// FormatISO renders t in UTC with an explicit offset, printing microseconds
// only when present (2024-12-20T00:00:00+00:00).
func FormatISO(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000-07:00")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}
