//go:build unit

package service_test

import (
	"testing"
	"time"

	domservice "hisitter/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBilledHours(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     int64
	}{
		{"under one hour", 59 * time.Minute, 0},
		{"exactly one hour", time.Hour, 1},
		{"partial hour dropped", 2*time.Hour + 30*time.Minute, 2},
		{"just under next hour", 3*time.Hour - time.Second, 2},
		{"multi-day", 25*time.Hour + 30*time.Minute, 25},
		{"several days", 49 * time.Hour, 49},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, domservice.BilledHours(c.duration))
		})
	}
}

func TestCost(t *testing.T) {
	start := time.Date(2026, time.June, 6, 10, 0, 0, 0, time.UTC)

	t.Run("two and a half hours at 25 dollars", func(t *testing.T) {
		cost, duration, err := domservice.Cost(start, start.Add(2*time.Hour+30*time.Minute), 2500)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), cost.Cents())
		assert.Equal(t, 2*time.Hour+30*time.Minute, duration)
	})

	t.Run("sub-hour bills zero but keeps real duration", func(t *testing.T) {
		cost, duration, err := domservice.Cost(start, start.Add(45*time.Minute), 2500)
		require.NoError(t, err)

		assert.Equal(t, int64(0), cost.Cents())
		assert.Equal(t, 45*time.Minute, duration)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, _, err := domservice.Cost(start, start, 2500)
		require.ErrorIs(t, err, domservice.ErrEndBeforeStart)
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := domservice.Cost(start, start.Add(-time.Minute), 2500)
		require.ErrorIs(t, err, domservice.ErrEndBeforeStart)
	})
}
