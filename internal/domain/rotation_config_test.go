package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrenceSameDayBeforeSlot(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "09:00", Timezone: "UTC"}

	// Monday 2026-06-15, 08:00: the slot is later today.
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)

	next, err := config.NextOccurrence(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrenceSameDayAfterSlotRollsAWeek(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "09:00", Timezone: "UTC"}

	// Monday 10:00: today's slot passed, roll to next Monday.
	now := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

	next, err := config.NextOccurrence(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 22, 9, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrenceExactlyAtSlotRollsAWeek(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "09:00", Timezone: "UTC"}

	now := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

	next, err := config.NextOccurrence(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 22, 9, 0, 0, 0, time.UTC), next)
}

func TestNextOccurrenceWeekdayAhead(t *testing.T) {
	// Friday slot, asked on a Monday.
	config := &RotationConfig{DayOfWeek: 5, TimeOfDay: "18:30", Timezone: "UTC"}

	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	next, err := config.NextOccurrence(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 19, 18, 30, 0, 0, time.UTC), next)
}

func TestNextOccurrenceHonorsTimezone(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "09:00", Timezone: "America/Chicago"}

	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	// 15:00 UTC on a June Monday is 10:00 in Chicago (CDT): the local slot
	// passed, so the result is next Monday in Chicago time.
	now := time.Date(2026, time.June, 15, 15, 0, 0, 0, time.UTC)

	next, err := config.NextOccurrence(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 22, 9, 0, 0, 0, chicago), next)
}

func TestNextOccurrenceInvalidTimezone(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "09:00", Timezone: "Mars/Olympus"}

	_, err := config.NextOccurrence(time.Now())
	assert.ErrorContains(t, err, "invalid timezone")
}

func TestNextOccurrenceInvalidTimeOfDay(t *testing.T) {
	config := &RotationConfig{DayOfWeek: 1, TimeOfDay: "9 o'clock", Timezone: "UTC"}

	_, err := config.NextOccurrence(time.Now())
	assert.ErrorContains(t, err, "invalid time of day")
}
