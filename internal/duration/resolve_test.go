package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Relative(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)

	cases := []struct {
		input string
		want  time.Duration
	}{
		{"1h30m", 90 * time.Minute},
		{"15m30s", 15*time.Minute + 30*time.Second},
		{"25m", 25 * time.Minute},
		{"2h", 2 * time.Hour},
		{"45s", 45 * time.Second},
		{"1h2m3s", time.Hour + 2*time.Minute + 3*time.Second},
		{"1H30M", 90 * time.Minute},   // units are case-insensitive
		{"  10m  ", 10 * time.Minute}, // surrounding whitespace ignored
		{"120m", 120 * time.Minute},   // values are not capped per unit
		{"100h", 100 * time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Resolve(tc.input, now)
			require.NoError(t, err)
			assert.Equal(t, now.Add(tc.want), got)
		})
	}
}

func TestResolve_RelativeErrors(t *testing.T) {
	t.Parallel()
	now := time.Now()

	cases := []struct {
		name  string
		input string
	}{
		{"units out of order", "30m1h"},
		{"seconds before minutes", "30s15m"},
		{"duplicate unit", "1h2h"},
		{"missing unit", "90"},
		{"unknown unit", "10x"},
		{"missing number", "h"},
		{"zero duration", "0s"},
		{"zero everything", "0h0m0s"},
		{"empty", ""},
		{"whitespace only", "   "},
		{"garbage", "soon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.input, now)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Error(), "accepted formats")
		})
	}
}

func TestResolve_Absolute(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)

	t.Run("date and time", func(t *testing.T) {
		got, err := Resolve("2026-01-25T14:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 25, 14, 0, 0, 0, time.Local), got)
	})

	t.Run("date, time and seconds", func(t *testing.T) {
		got, err := Resolve("2026-01-25T14:00:30", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 25, 14, 0, 30, 0, time.Local), got)
	})

	t.Run("date only defaults to midnight", func(t *testing.T) {
		got, err := Resolve("2026-01-21", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 21, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("past datetime is rejected", func(t *testing.T) {
		_, err := Resolve("2020-01-01T00:00", now)
		require.Error(t, err)

		var pastErr *PastInstantError
		require.ErrorAs(t, err, &pastErr)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local), pastErr.Target)
	})

	t.Run("present instant is rejected", func(t *testing.T) {
		_, err := Resolve("2026-01-20T10:00:00", now)

		var pastErr *PastInstantError
		require.ErrorAs(t, err, &pastErr)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := Resolve("2026-13-99", now)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestResolve_TimeOnly(t *testing.T) {
	t.Parallel()

	t.Run("still ahead today", func(t *testing.T) {
		now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
		got, err := Resolve("T14:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 20, 14, 0, 0, 0, time.Local), got)
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 1, 20, 15, 30, 0, 0, time.Local)
		got, err := Resolve("T14:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 21, 14, 0, 0, 0, time.Local), got)
	})

	t.Run("exact current time rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 1, 20, 14, 0, 0, 0, time.Local)
		got, err := Resolve("T14:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 21, 14, 0, 0, 0, time.Local), got)
	})

	t.Run("with seconds", func(t *testing.T) {
		now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
		got, err := Resolve("T14:00:30", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 20, 14, 0, 30, 0, time.Local), got)
	})

	t.Run("lowercase prefix", func(t *testing.T) {
		now := time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)
		got, err := Resolve("t14:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 1, 20, 14, 0, 0, 0, time.Local), got)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := Resolve("T25:99", time.Now())

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}
