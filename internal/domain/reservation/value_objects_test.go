//go:build unit

package reservation_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"parking-portal/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEndTime(t *testing.T) {
	casablanca, err := time.LoadLocation("Africa/Casablanca")
	require.NoError(t, err)

	t.Run("adds the duration", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		for h := reservation.MinDurationHours; h <= reservation.MaxDurationHours; h++ {
			end := reservation.CalculateEndTime(start, h)
			assert.Equal(t, time.Duration(h)*time.Hour, end.Sub(start))
		}
	})

	t.Run("crosses midnight", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 23, 0, 0, 0, casablanca)
		end := reservation.CalculateEndTime(start, 2)
		assert.Equal(t, "2025-06-02T01:00:00", reservation.FormatWire(end, casablanca))
	})

	t.Run("spring forward keeps elapsed time", func(t *testing.T) {
		newYork, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		start := time.Date(2024, 3, 10, 1, 0, 0, 0, newYork)
		end := reservation.CalculateEndTime(start, 2)
		assert.Equal(t, 2*time.Hour, end.Sub(start))
		assert.Equal(t, "2024-03-10T04:00:00", reservation.FormatWire(end, newYork))
	})
}

func TestParseWire(t *testing.T) {
	loc := time.FixedZone("UTC+1", 3600)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2025-06-01T10:00:00", want: time.Date(2025, 6, 1, 10, 0, 0, 0, loc)},
		{raw: "2025-06-01T10:00", want: time.Date(2025, 6, 1, 10, 0, 0, 0, loc)},
		{raw: "2025-06-01T10:00:00.123", want: time.Date(2025, 6, 1, 10, 0, 0, 123000000, loc)},
		{raw: "2025-06-01T09:00:00Z", want: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := reservation.ParseWire(tc.raw, loc)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
		})
	}

	t.Run("empty is zero time", func(t *testing.T) {
		got, err := reservation.ParseWire("  ", loc)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := reservation.ParseWire("01/06/2025 10:00", loc)
		assert.ErrorIs(t, err, reservation.ErrInvalidWireTime)
	})

	t.Run("format round trip", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 10, 30, 0, 0, loc)
		got, err := reservation.ParseWire(reservation.FormatWire(start, loc), loc)
		require.NoError(t, err)
		assert.True(t, start.Equal(got))
	})
}

func TestFormatDuration(t *testing.T) {
	cases := map[float64]string{
		0.5:  "30min",
		0.25: "15min",
		1:    "1h",
		1.5:  "1h30",
		2:    "2h",
		24:   "24h",
	}
	for in, want := range cases {
		assert.Equal(t, want, reservation.FormatDuration(in), "hours=%v", in)
	}
}
