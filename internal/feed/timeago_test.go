package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "0 minutes ago"},
		{time.Minute, "1 minute ago"},
		{59 * time.Minute, "59 minutes ago"},
		{time.Hour, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{24 * time.Hour, "1 day ago"},
		{29 * 24 * time.Hour, "29 days ago"},
		{45 * 24 * time.Hour, "1 month ago"},
		{200 * 24 * time.Hour, "6 months ago"},
		{400 * 24 * time.Hour, "1 year ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatTimeAgo(now, now.Add(-tt.ago)), "ago=%s", tt.ago)
	}
}

func TestFormatTimeAgoCoarseStopsAtDays(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "3 minutes ago", FormatTimeAgoCoarse(now, now.Add(-3*time.Minute)))
	require.Equal(t, "1 hour ago", FormatTimeAgoCoarse(now, now.Add(-90*time.Minute)))
	require.Equal(t, "400 days ago", FormatTimeAgoCoarse(now, now.Add(-400*24*time.Hour)))
}

func TestFormatTimeAgoEdges(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "recently", FormatTimeAgo(now, time.Time{}))
	require.Equal(t, "recently", FormatTimeAgoCoarse(now, time.Time{}))
	require.Equal(t, "0 minutes ago", FormatTimeAgo(now, now.Add(time.Hour)), "future times clamp to now")
}

func TestParseSourceTime(t *testing.T) {
	got, err := ParseSourceTime("2024-05-30T10:15:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 30, 10, 15, 0, 0, time.UTC), got.UTC())

	got, err = ParseSourceTime("2024-05-30T10:15:00.000Z")
	require.NoError(t, err)
	require.Equal(t, 2024, got.Year())

	_, err = ParseSourceTime("")
	require.Error(t, err)

	_, err = ParseSourceTime("not a date at all")
	require.Error(t, err)
}
