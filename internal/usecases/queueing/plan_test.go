package queueing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablerota/rotation-api/internal/domain"
)

func pendingEntries(n int) []*domain.QueueEntry {
	entries := make([]*domain.QueueEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, &domain.QueueEntry{
			ID:           fmt.Sprintf("entry-%c", 'A'+i),
			RestaurantID: fmt.Sprintf("rest-%c", 'A'+i),
			Position:     i + 1,
			Status:       domain.QueueEntryStatusPending,
		})
	}
	return entries
}

// applyWrites replays a plan against an in-memory position table,
// checking after every single write that no two entries share a position.
// That per-write check is the whole point of the two-phase plans: a
// unique index must never fire mid-transaction.
func applyWrites(t *testing.T, entries []*domain.QueueEntry, writes []positionWrite) map[string]int {
	t.Helper()

	positions := make(map[string]int, len(entries))
	for _, entry := range entries {
		positions[entry.ID] = entry.Position
	}

	for _, write := range writes {
		_, known := positions[write.entryID]
		require.True(t, known, "write targets unknown entry %s", write.entryID)
		positions[write.entryID] = write.position

		seen := make(map[int]string, len(positions))
		for id, position := range positions {
			other, dup := seen[position]
			require.False(t, dup, "entries %s and %s both at position %d mid-plan", id, other, position)
			seen[position] = id
		}
	}

	return positions
}

func TestReorderPlanMovesEntryToFront(t *testing.T) {
	entries := pendingEntries(5) // A..E at 1..5

	writes, err := reorderPlan(entries, "entry-C", 1)
	require.NoError(t, err)

	positions := applyWrites(t, entries, writes)

	assert.Equal(t, 1, positions["entry-C"])
	assert.Equal(t, 2, positions["entry-A"])
	assert.Equal(t, 3, positions["entry-B"])
	assert.Equal(t, 4, positions["entry-D"])
	assert.Equal(t, 5, positions["entry-E"])
}

func TestReorderPlanMovesEntryDown(t *testing.T) {
	entries := pendingEntries(5)

	writes, err := reorderPlan(entries, "entry-B", 4)
	require.NoError(t, err)

	positions := applyWrites(t, entries, writes)

	assert.Equal(t, 1, positions["entry-A"])
	assert.Equal(t, 2, positions["entry-C"])
	assert.Equal(t, 3, positions["entry-D"])
	assert.Equal(t, 4, positions["entry-B"])
	assert.Equal(t, 5, positions["entry-E"])
}

func TestReorderPlanRoundTripRestoresOrder(t *testing.T) {
	entries := pendingEntries(5)

	writes, err := reorderPlan(entries, "entry-C", 1)
	require.NoError(t, err)
	positions := applyWrites(t, entries, writes)

	for _, entry := range entries {
		entry.Position = positions[entry.ID]
	}

	writes, err = reorderPlan(entries, "entry-C", 3)
	require.NoError(t, err)
	positions = applyWrites(t, entries, writes)

	for i, id := range []string{"entry-A", "entry-B", "entry-C", "entry-D", "entry-E"} {
		assert.Equal(t, i+1, positions[id])
	}
}

func TestReorderPlanSamePositionIsNoop(t *testing.T) {
	entries := pendingEntries(3)

	writes, err := reorderPlan(entries, "entry-B", 2)
	require.NoError(t, err)
	assert.Empty(t, writes)
}

func TestReorderPlanRejectsOutOfRangePosition(t *testing.T) {
	entries := pendingEntries(3)

	_, err := reorderPlan(entries, "entry-A", 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = reorderPlan(entries, "entry-A", 4)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

func TestReorderPlanRejectsUnknownEntry(t *testing.T) {
	entries := pendingEntries(3)

	_, err := reorderPlan(entries, "entry-Z", 1)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestBulkReorderPlanReversesQueue(t *testing.T) {
	entries := pendingEntries(4)

	updates := []domain.QueuePositionUpdate{
		{EntryID: "entry-A", Position: 4},
		{EntryID: "entry-B", Position: 3},
		{EntryID: "entry-C", Position: 2},
		{EntryID: "entry-D", Position: 1},
	}

	writes, err := bulkReorderPlan(entries, updates)
	require.NoError(t, err)

	positions := applyWrites(t, entries, writes)
	assert.Equal(t, 4, positions["entry-A"])
	assert.Equal(t, 3, positions["entry-B"])
	assert.Equal(t, 2, positions["entry-C"])
	assert.Equal(t, 1, positions["entry-D"])
}

func TestBulkReorderPlanRejectsBadInput(t *testing.T) {
	entries := pendingEntries(3)

	tests := []struct {
		name    string
		updates []domain.QueuePositionUpdate
		wantErr error
	}{
		{
			name: "incomplete cover",
			updates: []domain.QueuePositionUpdate{
				{EntryID: "entry-A", Position: 1},
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "duplicate position",
			updates: []domain.QueuePositionUpdate{
				{EntryID: "entry-A", Position: 1},
				{EntryID: "entry-B", Position: 1},
				{EntryID: "entry-C", Position: 3},
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "duplicate entry",
			updates: []domain.QueuePositionUpdate{
				{EntryID: "entry-A", Position: 1},
				{EntryID: "entry-A", Position: 2},
				{EntryID: "entry-C", Position: 3},
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "position outside range",
			updates: []domain.QueuePositionUpdate{
				{EntryID: "entry-A", Position: 1},
				{EntryID: "entry-B", Position: 2},
				{EntryID: "entry-C", Position: 4},
			},
			wantErr: ErrInvalidOrder,
		},
		{
			name: "unknown entry",
			updates: []domain.QueuePositionUpdate{
				{EntryID: "entry-A", Position: 1},
				{EntryID: "entry-B", Position: 2},
				{EntryID: "entry-Z", Position: 3},
			},
			wantErr: ErrEntryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bulkReorderPlan(entries, tt.updates)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemovalPlanClosesGap(t *testing.T) {
	entries := pendingEntries(5)

	// Entry B (position 2) was deleted; remaining entries shift down.
	remaining := append([]*domain.QueueEntry{}, entries[0])
	remaining = append(remaining, entries[2:]...)

	writes := removalPlan(remaining, 2)

	positions := applyWrites(t, remaining, writes)
	assert.Equal(t, 1, positions["entry-A"])
	assert.Equal(t, 2, positions["entry-C"])
	assert.Equal(t, 3, positions["entry-D"])
	assert.Equal(t, 4, positions["entry-E"])

	// Ascending write order keeps each move landing on a vacated slot.
	for i := 1; i < len(writes); i++ {
		assert.Greater(t, writes[i].position, writes[i-1].position)
	}
}

func TestInsertShiftPlanOpensSlot(t *testing.T) {
	entries := pendingEntries(4)

	writes := insertShiftPlan(entries, 2)

	positions := applyWrites(t, entries, writes)
	assert.Equal(t, 1, positions["entry-A"])
	assert.Equal(t, 3, positions["entry-B"])
	assert.Equal(t, 4, positions["entry-C"])
	assert.Equal(t, 5, positions["entry-D"])

	for i := 1; i < len(writes); i++ {
		assert.Less(t, writes[i].position, writes[i-1].position)
	}
}

func TestRepairPlanRenumbersGapsAndDuplicates(t *testing.T) {
	entries := []*domain.QueueEntry{
		{ID: "entry-A", Position: 2},
		{ID: "entry-B", Position: 5},
		{ID: "entry-C", Position: 5},
		{ID: "entry-D", Position: 9},
	}

	writes := repairPlan(entries)

	positions := make(map[string]int)
	for _, entry := range entries {
		positions[entry.ID] = entry.Position
	}
	for _, write := range writes {
		positions[write.entryID] = write.position
	}

	assert.Equal(t, 1, positions["entry-A"])
	assert.Equal(t, 4, positions["entry-D"])
	// The two entries at position 5 land on 2 and 3 in stable order.
	assert.ElementsMatch(t, []int{2, 3}, []int{positions["entry-B"], positions["entry-C"]})
}

func TestRepairPlanIsIdempotent(t *testing.T) {
	entries := pendingEntries(4)

	writes := repairPlan(entries)
	assert.Empty(t, writes)
}

func TestAuditPositionsReportsGapsAndDuplicates(t *testing.T) {
	entries := []*domain.QueueEntry{
		{ID: "entry-A", Position: 1},
		{ID: "entry-B", Position: 3},
		{ID: "entry-C", Position: 3},
	}

	report := auditPositions(entries)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Issues, "duplicate position 3 (2 entries)")
	assert.Contains(t, report.Issues, "gap at position 2")
}

func TestAuditPositionsValidQueue(t *testing.T) {
	report := auditPositions(pendingEntries(5))

	assert.True(t, report.IsValid)
	assert.Empty(t, report.Issues)
}

func TestAuditPositionsEmptyQueueIsValid(t *testing.T) {
	report := auditPositions(nil)

	assert.True(t, report.IsValid)
}
