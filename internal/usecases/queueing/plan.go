package queueing

import (
	"fmt"
	"sort"

	"github.com/tablerota/rotation-api/internal/domain"
)

// tempPositionOffset puts phase-one positions well below zero so they can
// never collide with a real position or with each other.
const tempPositionOffset = 1000

// positionWrite is one UPDATE of an entry's position. Plans are executed
// write-by-write inside a single transaction, in order.
type positionWrite struct {
	entryID  string
	position int
}

// reorderPlan computes the two-phase write sequence that moves entryID to
// newPosition. Phase one parks every entry in the closed interval
// [min(old,new), max(old,new)] on a unique negative position; phase two
// writes the final positions. Executing the plan in order inside one
// transaction never exposes a duplicate position, even mid-flight.
func reorderPlan(entries []*domain.QueueEntry, entryID string, newPosition int) ([]positionWrite, error) {
	var moved *domain.QueueEntry
	for _, entry := range entries {
		if entry.ID == entryID {
			moved = entry
			break
		}
	}
	if moved == nil {
		return nil, ErrEntryNotFound
	}

	if newPosition < 1 || newPosition > len(entries) {
		return nil, fmt.Errorf("%w: position %d outside [1..%d]", ErrInvalidOrder, newPosition, len(entries))
	}

	oldPosition := moved.Position
	if oldPosition == newPosition {
		return nil, nil
	}

	lo, hi := oldPosition, newPosition
	if lo > hi {
		lo, hi = hi, lo
	}

	affected := make([]*domain.QueueEntry, 0, hi-lo+1)
	for _, entry := range entries {
		if entry.Position >= lo && entry.Position <= hi {
			affected = append(affected, entry)
		}
	}

	writes := make([]positionWrite, 0, 2*len(affected))
	for i, entry := range affected {
		writes = append(writes, positionWrite{entryID: entry.ID, position: -(i + tempPositionOffset)})
	}

	for _, entry := range affected {
		final := entry.Position
		switch {
		case entry.ID == entryID:
			final = newPosition
		case oldPosition < newPosition:
			// Moving down: everyone between shifts up toward the vacated slot.
			final = entry.Position - 1
		default:
			final = entry.Position + 1
		}
		writes = append(writes, positionWrite{entryID: entry.ID, position: final})
	}

	return writes, nil
}

// bulkReorderPlan computes the two-phase write sequence for a full
// reordering. The supplied updates must cover exactly the pending entries
// with positions {1..N}.
func bulkReorderPlan(entries []*domain.QueueEntry, updates []domain.QueuePositionUpdate) ([]positionWrite, error) {
	if len(updates) != len(entries) {
		return nil, fmt.Errorf("%w: got %d updates for %d pending entries", ErrInvalidOrder, len(updates), len(entries))
	}

	byID := make(map[string]*domain.QueueEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	seenPositions := make(map[int]struct{}, len(updates))
	seenEntries := make(map[string]struct{}, len(updates))
	for _, update := range updates {
		if _, ok := byID[update.EntryID]; !ok {
			return nil, NewQueueError(ErrEntryNotFound, update.EntryID, "not a pending entry")
		}
		if _, dup := seenEntries[update.EntryID]; dup {
			return nil, fmt.Errorf("%w: entry %s listed twice", ErrInvalidOrder, update.EntryID)
		}
		seenEntries[update.EntryID] = struct{}{}

		if update.Position < 1 || update.Position > len(entries) {
			return nil, fmt.Errorf("%w: position %d outside [1..%d]", ErrInvalidOrder, update.Position, len(entries))
		}
		if _, dup := seenPositions[update.Position]; dup {
			return nil, fmt.Errorf("%w: position %d listed twice", ErrInvalidOrder, update.Position)
		}
		seenPositions[update.Position] = struct{}{}
	}

	writes := make([]positionWrite, 0, 2*len(updates))
	for i, update := range updates {
		writes = append(writes, positionWrite{entryID: update.EntryID, position: -(i + tempPositionOffset)})
	}
	for _, update := range updates {
		writes = append(writes, positionWrite{entryID: update.EntryID, position: update.Position})
	}

	return writes, nil
}

// removalPlan closes the hole left at removedPosition. Every entry above it
// moves down one slot. Writes are emitted in ascending position order, so
// each entry moves into a slot already vacated within the transaction.
func removalPlan(entries []*domain.QueueEntry, removedPosition int) []positionWrite {
	writes := make([]positionWrite, 0)
	for _, entry := range entries {
		if entry.Position > removedPosition {
			writes = append(writes, positionWrite{entryID: entry.ID, position: entry.Position - 1})
		}
	}

	sort.Slice(writes, func(i, j int) bool {
		return writes[i].position < writes[j].position
	})

	return writes
}

// insertShiftPlan opens a slot at position by shifting every entry at or
// above it down one. Writes go in descending order for the same
// no-transient-duplicate reason removalPlan goes ascending.
func insertShiftPlan(entries []*domain.QueueEntry, position int) []positionWrite {
	writes := make([]positionWrite, 0)
	for _, entry := range entries {
		if entry.Position >= position {
			writes = append(writes, positionWrite{entryID: entry.ID, position: entry.Position + 1})
		}
	}

	sort.Slice(writes, func(i, j int) bool {
		return writes[i].position > writes[j].position
	})

	return writes
}

// repairPlan renumbers entries to {1..N} by ascending current position,
// closing gaps. Entries already in place produce no write, which is what
// makes repair idempotent.
func repairPlan(entries []*domain.QueueEntry) []positionWrite {
	ordered := make([]*domain.QueueEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	writes := make([]positionWrite, 0)
	for i, entry := range ordered {
		want := i + 1
		if entry.Position != want {
			writes = append(writes, positionWrite{entryID: entry.ID, position: want})
		}
	}

	return writes
}

// auditPositions reports gaps and duplicates without mutating anything.
func auditPositions(entries []*domain.QueueEntry) *domain.QueueIntegrityReport {
	report := &domain.QueueIntegrityReport{
		IsValid: true,
		Issues:  []string{},
	}

	seen := make(map[int]int, len(entries))
	for _, entry := range entries {
		seen[entry.Position]++
	}

	for position, count := range seen {
		if count > 1 {
			report.Issues = append(report.Issues, fmt.Sprintf("duplicate position %d (%d entries)", position, count))
		}
	}

	for want := 1; want <= len(entries); want++ {
		if _, ok := seen[want]; !ok {
			report.Issues = append(report.Issues, fmt.Sprintf("gap at position %d", want))
		}
	}

	sort.Strings(report.Issues)
	report.IsValid = len(report.Issues) == 0

	return report
}
