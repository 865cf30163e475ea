//go:build unit

package availability_test

import (
	"testing"
	"time"

	"hisitter/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, weekday time.Weekday, shift string) availability.Slot {
	t.Helper()
	s, err := availability.NewShift(shift)
	require.NoError(t, err)
	slot, err := availability.NewSlot(weekday, s)
	require.NoError(t, err)
	return slot
}

func TestNewShift(t *testing.T) {
	for _, valid := range []string{"morning", "afternoon", "evening", "night"} {
		_, err := availability.NewShift(valid)
		assert.NoError(t, err, valid)
	}

	_, err := availability.NewShift("midnight")
	assert.ErrorIs(t, err, availability.ErrInvalidShift)

	_, err = availability.NewShift("")
	assert.ErrorIs(t, err, availability.ErrInvalidShift)
}

func TestScheduleCovers(t *testing.T) {
	// 2026-06-06 is a Saturday
	saturday := time.Date(2026, time.June, 6, 0, 0, 0, 0, time.UTC)
	sunday := saturday.AddDate(0, 0, 1)

	evening, err := availability.NewShift("evening")
	require.NoError(t, err)
	morning, err := availability.NewShift("morning")
	require.NoError(t, err)

	schedule := availability.NewSchedule([]availability.Slot{
		mustSlot(t, time.Saturday, "evening"),
		mustSlot(t, time.Sunday, "morning"),
	})

	t.Run("matching weekday and shift", func(t *testing.T) {
		assert.True(t, schedule.Covers(saturday, evening))
		assert.True(t, schedule.Covers(sunday, morning))
	})

	t.Run("matching weekday, wrong shift", func(t *testing.T) {
		assert.False(t, schedule.Covers(saturday, morning))
	})

	t.Run("wrong weekday", func(t *testing.T) {
		assert.False(t, schedule.Covers(sunday, evening))
	})

	t.Run("same weekday next week still matches", func(t *testing.T) {
		assert.True(t, schedule.Covers(saturday.AddDate(0, 0, 7), evening))
	})

	t.Run("empty schedule covers nothing", func(t *testing.T) {
		empty := availability.NewSchedule(nil)
		assert.True(t, empty.IsEmpty())
		assert.False(t, empty.Covers(saturday, evening))
	})

	t.Run("duplicate slots are harmless", func(t *testing.T) {
		dup := availability.NewSchedule([]availability.Slot{
			mustSlot(t, time.Saturday, "evening"),
			mustSlot(t, time.Saturday, "evening"),
		})
		assert.True(t, dup.Covers(saturday, evening))
	})
}
