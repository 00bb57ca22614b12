package domain

import (
	"time"
)

type RotationType string

const (
	RotationTypeScheduled RotationType = "scheduled"
	RotationTypeManual    RotationType = "manual"
	RotationTypeEmergency RotationType = "emergency"
)

// RotationHistoryRecord is the append-only ledger of what was featured and
// when. Records are written once per rotation and never mutated.
type RotationHistoryRecord struct {
	ID           string       `json:"id"`
	RestaurantID string       `json:"restaurant_id"`
	Category     string       `json:"category"`
	StartedAt    time.Time    `json:"started_at"`
	EndedAt      time.Time    `json:"ended_at"`
	ViewCount    int          `json:"view_count"`
	ClickCount   int          `json:"click_count"`
	RotationType RotationType `json:"rotation_type"`
	TriggeredBy  *string      `json:"triggered_by"`
	Notes        *string      `json:"notes"`
	CreatedAt    time.Time    `json:"created_at"`
}

// RotationResult reports a completed swap.
type RotationResult struct {
	Previous *Restaurant `json:"previous"`
	Next     *Restaurant `json:"next"`
}
