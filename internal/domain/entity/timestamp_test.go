package entity

import (
	"testing"
	"time"

	"github.com/diillson/aws-ri-expiration-alert/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-12-20T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	got, err = ParseTimestamp("2024-12-20T02:00:00+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, got.Location())

	got, err = ParseTimestamp("2024-12-20T00:00:00.250Z")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestParseTimestampRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{"", "2024-12-20", "20 Dec 2024", "2024-12-20T00:00:00"} {
		_, err := ParseTimestamp(in)
		assert.ErrorIs(t, err, types.ErrInvalidTimestamp, in)
	}
}

func TestStringAndTypedTimestampsAgree(t *testing.T) {
	now := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseTimestamp("2024-12-20T00:00:00Z")
	require.NoError(t, err)

	typed := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	offset := typed.In(time.FixedZone("BRT", -3*60*60))

	assert.Equal(t, 5, DaysBetween(now, parsed))
	assert.Equal(t, DaysBetween(now, parsed), DaysBetween(now, CoerceUTC(typed)))
	assert.Equal(t, DaysBetween(now, parsed), DaysBetween(now, CoerceUTC(offset)))
}

func TestDaysBetweenFloors(t *testing.T) {
	now := time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant", now, 0},
		{"one hour ahead", now.Add(time.Hour), 0},
		{"just under a day", now.Add(24*time.Hour - time.Nanosecond), 0},
		{"exactly a day", now.Add(24 * time.Hour), 1},
		{"one hour ago", now.Add(-time.Hour), -1},
		{"exactly a day ago", now.Add(-24 * time.Hour), -1},
		{"a day and a second ago", now.Add(-24*time.Hour - time.Second), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(now, tt.end))
		})
	}
}

func TestFormatISO(t *testing.T) {
	assert.Equal(t, "2024-12-20T00:00:00+00:00", FormatISO(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-20T00:00:00.123456+00:00", FormatISO(time.Date(2024, 12, 20, 0, 0, 0, 123456789, time.UTC)))

	local := time.Date(2024, 12, 20, 1, 0, 0, 0, time.FixedZone("CET", 60*60))
	assert.Equal(t, "2024-12-20T00:00:00+00:00", FormatISO(local))
}

func TestRDSEndTime(t *testing.T) {
	ri := RDSReservedInstance{
		StartTime:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationSeconds: 31536000,
	}
	// 2024 is a leap year, so 365 days lands on Dec 31.
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), ri.EndTime())

	ri.StartTime = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ri.EndTime())

	ri.StartTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ri.DurationSeconds = 31622400
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ri.EndTime())
}
