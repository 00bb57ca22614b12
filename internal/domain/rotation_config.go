package domain

import (
	"fmt"
	"time"
)

// RotationConfig is the singleton schedule for the featured rotation.
// DayOfWeek follows time.Weekday (0 = Sunday).
type RotationConfig struct {
	ID             int        `json:"id"`
	DayOfWeek      int        `json:"day_of_week"`
	TimeOfDay      string     `json:"time_of_day"` // "15:04"
	Timezone       string     `json:"timezone"`
	IsActive       bool       `json:"is_active"`
	MinQueueSize   int        `json:"min_queue_size"`
	NextRotationAt *time.Time `json:"next_rotation_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NextOccurrence advances from now to the next configured weekday+time in
// the configured timezone, rolling to next week if today's slot already
// passed.
func (c *RotationConfig) NextOccurrence(now time.Time) (time.Time, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	timeOfDay, err := time.Parse("15:04", c.TimeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", c.TimeOfDay, err)
	}

	local := now.In(location)
	daysAhead := (c.DayOfWeek - int(local.Weekday()) + 7) % 7

	next := time.Date(
		local.Year(), local.Month(), local.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		location,
	).AddDate(0, 0, daysAhead)

	if !next.After(local) {
		next = next.AddDate(0, 0, 7)
	}

	return next, nil
}

type UpdateRotationConfigRequest struct {
	DayOfWeek    *int    `json:"day_of_week,omitempty"`
	TimeOfDay    *string `json:"time_of_day,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
	MinQueueSize *int    `json:"min_queue_size,omitempty"`
}
