package queueing

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablerota/rotation-api/infrastructure/repository/mocks"
	"github.com/tablerota/rotation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// stubConn satisfies postgres.Conn without a database; RunInTransaction
// just invokes the callback with a nil transaction, which the mocked
// repositories accept.
type stubConn struct{}

func (stubConn) Exec(string, ...interface{}) (sql.Result, error)  { return nil, nil }
func (stubConn) Query(string, ...interface{}) (*sql.Rows, error)  { return nil, nil }
func (stubConn) QueryRow(string, ...interface{}) *sql.Row         { return nil }
func (stubConn) Begin(context.Context) (*sql.Tx, error)           { return nil, nil }
func (stubConn) Close() error                                     { return nil }
func (stubConn) Ping(context.Context) error                       { return nil }
func (stubConn) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func newTestService(t *testing.T) (QueueService, *mocks.MockQueueRepository, *mocks.MockRestaurantRepository) {
	ctrl := gomock.NewController(t)
	queueRepo := mocks.NewMockQueueRepository(ctrl)
	restaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	return NewService(stubConn{}, queueRepo, restaurantRepo), queueRepo, restaurantRepo
}

func TestEnqueueAppendsAtTail(t *testing.T) {
	service, queueRepo, restaurantRepo := newTestService(t)

	restaurantRepo.EXPECT().GetByID("rest-1").Return(&domain.Restaurant{ID: "rest-1"}, nil)
	queueRepo.EXPECT().GetPendingByRestaurantID("rest-1").Return(nil, nil)
	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return([]*domain.QueueEntry{
		{ID: "e1", Position: 1, Status: domain.QueueEntryStatusPending},
		{ID: "e2", Position: 2, Status: domain.QueueEntryStatusPending},
	}, nil)

	var inserted *domain.QueueEntry
	queueRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *sql.Tx, entry *domain.QueueEntry) error {
			inserted = entry
			return nil
		})

	entry, err := service.Enqueue(context.Background(), EnqueueRequest{
		RestaurantID: "rest-1",
		AddedBy:      "editor@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, entry.Position)
	assert.Equal(t, domain.QueueEntryStatusPending, entry.Status)
	assert.Equal(t, "editor@example.com", entry.AddedBy)
	assert.NotEmpty(t, entry.ID)
	assert.Same(t, entry, inserted)
}

func TestEnqueueAtExplicitPositionShiftsTail(t *testing.T) {
	service, queueRepo, restaurantRepo := newTestService(t)

	restaurantRepo.EXPECT().GetByID("rest-1").Return(&domain.Restaurant{ID: "rest-1"}, nil)
	queueRepo.EXPECT().GetPendingByRestaurantID("rest-1").Return(nil, nil)
	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return([]*domain.QueueEntry{
		{ID: "e1", Position: 1, Status: domain.QueueEntryStatusPending},
		{ID: "e2", Position: 2, Status: domain.QueueEntryStatusPending},
		{ID: "e3", Position: 3, Status: domain.QueueEntryStatusPending},
	}, nil)

	// Tail shifts happen deepest-first so no transient duplicate appears.
	gomock.InOrder(
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e3", 4).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e2", 3).Return(nil),
	)
	queueRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(nil)

	position := 2
	entry, err := service.Enqueue(context.Background(), EnqueueRequest{
		RestaurantID: "rest-1",
		Position:     &position,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Position)
}

func TestEnqueueRejectsUnknownRestaurant(t *testing.T) {
	service, _, restaurantRepo := newTestService(t)

	restaurantRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := service.Enqueue(context.Background(), EnqueueRequest{RestaurantID: "ghost"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEnqueueRejectsFeaturedRestaurant(t *testing.T) {
	service, _, restaurantRepo := newTestService(t)

	restaurantRepo.EXPECT().GetByID("rest-1").Return(&domain.Restaurant{ID: "rest-1", IsFeatured: true}, nil)

	_, err := service.Enqueue(context.Background(), EnqueueRequest{RestaurantID: "rest-1"})
	assert.ErrorIs(t, err, ErrAlreadyFeatured)
}

func TestEnqueueRejectsDuplicatePendingEntry(t *testing.T) {
	service, queueRepo, restaurantRepo := newTestService(t)

	restaurantRepo.EXPECT().GetByID("rest-1").Return(&domain.Restaurant{ID: "rest-1"}, nil)
	queueRepo.EXPECT().GetPendingByRestaurantID("rest-1").Return(&domain.QueueEntry{ID: "existing"}, nil)

	_, err := service.Enqueue(context.Background(), EnqueueRequest{RestaurantID: "rest-1"})
	assert.ErrorIs(t, err, ErrAlreadyQueued)

	var queueErr *QueueError
	require.ErrorAs(t, err, &queueErr)
	assert.Equal(t, "existing", queueErr.EntryID)
}

func TestDequeueCompactsRemainingEntries(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	pending := []*domain.QueueEntry{
		{ID: "e1", Position: 1, Status: domain.QueueEntryStatusPending},
		{ID: "e2", Position: 2, Status: domain.QueueEntryStatusPending},
		{ID: "e3", Position: 3, Status: domain.QueueEntryStatusPending},
	}

	queueRepo.EXPECT().GetByID("e2").Return(pending[1], nil)
	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return(pending, nil)
	queueRepo.EXPECT().DeleteTx(gomock.Any(), "e2").Return(nil)
	queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e3", 2).Return(nil)

	err := service.Dequeue(context.Background(), "e2")
	assert.NoError(t, err)
}

func TestDequeueRejectsNonPendingEntry(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	queueRepo.EXPECT().GetByID("e1").Return(&domain.QueueEntry{
		ID:     "e1",
		Status: domain.QueueEntryStatusCompleted,
	}, nil)

	err := service.Dequeue(context.Background(), "e1")
	assert.ErrorIs(t, err, ErrCannotRemoveActive)
}

func TestDequeueRejectsUnknownEntry(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	queueRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	err := service.Dequeue(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestReorderWritesTwoPhasePlan(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	pending := []*domain.QueueEntry{
		{ID: "e1", Position: 1, Status: domain.QueueEntryStatusPending},
		{ID: "e2", Position: 2, Status: domain.QueueEntryStatusPending},
		{ID: "e3", Position: 3, Status: domain.QueueEntryStatusPending},
	}

	queueRepo.EXPECT().GetByID("e3").Return(pending[2], nil)
	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return(pending, nil)

	// Phase one parks all affected entries on negatives, phase two writes
	// the final order [e3, e1, e2].
	gomock.InOrder(
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e1", -1000).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e2", -1001).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e3", -1002).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e1", 2).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e2", 3).Return(nil),
		queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e3", 1).Return(nil),
	)

	err := service.Reorder(context.Background(), "e3", 1)
	assert.NoError(t, err)
}

func TestPromoteHeadTxCompletesAndCompacts(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	pending := []*domain.QueueEntry{
		{ID: "e1", RestaurantID: "rest-1", Position: 1, Status: domain.QueueEntryStatusPending},
		{ID: "e2", RestaurantID: "rest-2", Position: 2, Status: domain.QueueEntryStatusPending},
	}

	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return(pending, nil)
	queueRepo.EXPECT().CompleteTx(gomock.Any(), "e1").Return(nil)
	queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e2", 1).Return(nil)

	head, err := service.PromoteHeadTx(nil)
	require.NoError(t, err)
	assert.Equal(t, "e1", head.ID)
}

func TestPromoteHeadTxEmptyQueue(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return(nil, nil)

	head, err := service.PromoteHeadTx(nil)
	require.NoError(t, err)
	assert.Nil(t, head)
}

func TestRepairIntegrityCountsMovedEntries(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	queueRepo.EXPECT().ListPendingTx(gomock.Any()).Return([]*domain.QueueEntry{
		{ID: "e1", Position: 2},
		{ID: "e2", Position: 7},
	}, nil)
	queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e1", 1).Return(nil)
	queueRepo.EXPECT().SetPositionTx(gomock.Any(), "e2", 2).Return(nil)

	repaired, err := service.RepairIntegrity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repaired)
}

func TestValidateIntegrityFlagsBrokenQueue(t *testing.T) {
	service, queueRepo, _ := newTestService(t)

	queueRepo.EXPECT().ListPending().Return([]*domain.QueueEntry{
		{ID: "e1", Position: 1},
		{ID: "e2", Position: 3},
	}, nil)

	report, err := service.ValidateIntegrity()
	require.NoError(t, err)
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Issues, "gap at position 2")
}
