package domain

import (
	"time"
)

type QueueEntryStatus string

const (
	QueueEntryStatusPending   QueueEntryStatus = "PENDING"
	QueueEntryStatusActive    QueueEntryStatus = "ACTIVE"
	QueueEntryStatusCompleted QueueEntryStatus = "COMPLETED"
)

// QueueEntry is one waiting slot in the rotation queue. Positions among
// PENDING entries are always exactly {1..N}, no gaps, no duplicates.
type QueueEntry struct {
	ID           string           `json:"id"`
	RestaurantID string           `json:"restaurant_id"`
	Position     int              `json:"position"`
	Status       QueueEntryStatus `json:"status"`
	AddedBy      string           `json:"added_by"`
	Notes        *string          `json:"notes"`
	ScheduledFor *time.Time       `json:"scheduled_for"`
	AddedAt      time.Time        `json:"added_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// QueuePositionUpdate is one element of a bulk reorder request.
type QueuePositionUpdate struct {
	EntryID  string `json:"entry_id"`
	Position int    `json:"position"`
}

// QueueIntegrityReport is the result of a read-only position audit.
type QueueIntegrityReport struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues"`
}
