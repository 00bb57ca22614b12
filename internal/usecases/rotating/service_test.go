package rotating

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/tablerota/rotation-api/infrastructure/repository/mocks"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/maintaining"
	maintainingmocks "github.com/tablerota/rotation-api/internal/usecases/maintaining/mocks"
	"github.com/tablerota/rotation-api/internal/usecases/notifying"
	notifyingmocks "github.com/tablerota/rotation-api/internal/usecases/notifying/mocks"
	queueingmocks "github.com/tablerota/rotation-api/internal/usecases/queueing/mocks"
	"go.uber.org/mock/gomock"
)

type stubConn struct{}

func (stubConn) Exec(string, ...interface{}) (sql.Result, error) { return nil, nil }
func (stubConn) Query(string, ...interface{}) (*sql.Rows, error) { return nil, nil }
func (stubConn) QueryRow(string, ...interface{}) *sql.Row        { return nil }
func (stubConn) Begin(context.Context) (*sql.Tx, error)          { return nil, nil }
func (stubConn) Close() error                                    { return nil }
func (stubConn) Ping(context.Context) error                      { return nil }
func (stubConn) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

type rotationMocks struct {
	restaurantRepo *repomocks.MockRestaurantRepository
	historyRepo    *repomocks.MockRotationHistoryRepository
	configRepo     *repomocks.MockRotationConfigRepository
	queueService   *queueingmocks.MockQueueService
	maintainer     *maintainingmocks.MockMaintainer
	notifier       *notifyingmocks.MockNotifier
}

func newTestRotation(t *testing.T, replenish bool) (*Service, rotationMocks) {
	ctrl := gomock.NewController(t)

	m := rotationMocks{
		restaurantRepo: repomocks.NewMockRestaurantRepository(ctrl),
		historyRepo:    repomocks.NewMockRotationHistoryRepository(ctrl),
		configRepo:     repomocks.NewMockRotationConfigRepository(ctrl),
		queueService:   queueingmocks.NewMockQueueService(ctrl),
		maintainer:     maintainingmocks.NewMockMaintainer(ctrl),
		notifier:       notifyingmocks.NewMockNotifier(ctrl),
	}

	service := NewService(
		stubConn{},
		m.restaurantRepo,
		m.historyRepo,
		m.configRepo,
		m.queueService,
		m.maintainer,
		m.notifier,
		replenish,
	)

	return service, m
}

// captureNotifications records every emitted notification kind.
func captureNotifications(m rotationMocks) *[]notifying.Kind {
	var mu sync.Mutex
	kinds := &[]notifying.Kind{}
	m.notifier.EXPECT().Notify(gomock.Any()).Do(func(n notifying.Notification) {
		mu.Lock()
		defer mu.Unlock()
		*kinds = append(*kinds, n.Kind)
	}).AnyTimes()
	return kinds
}

func activeConfig() *domain.RotationConfig {
	return &domain.RotationConfig{
		ID:           1,
		DayOfWeek:    1,
		TimeOfDay:    "09:00",
		Timezone:     "UTC",
		IsActive:     true,
		MinQueueSize: 3,
	}
}

func TestRotateFromQueueSwapsAtomically(t *testing.T) {
	service, m := newTestRotation(t, true)
	kinds := captureNotifications(m)

	featuredAt := time.Date(2026, time.August, 21, 9, 0, 0, 0, time.UTC)
	previous := &domain.Restaurant{
		ID:         "rest-prev",
		Name:       "Old Favorite",
		Categories: []string{"italian"},
		IsFeatured: true,
		FeaturedAt: &featuredAt,
		ViewCount:  120,
		ClickCount: 14,
	}
	next := &domain.Restaurant{ID: "rest-next", Name: "New Spot"}
	head := &domain.QueueEntry{ID: "e1", RestaurantID: "rest-next", Position: 1}

	m.queueService.EXPECT().Head().Return(head, nil)
	m.restaurantRepo.EXPECT().GetByID("rest-next").Return(next, nil)
	m.restaurantRepo.EXPECT().GetFeatured().Return(previous, nil)

	m.queueService.EXPECT().PromoteHeadTx(gomock.Any()).Return(head, nil)
	m.restaurantRepo.EXPECT().ClearFeaturedTx(gomock.Any(), "rest-prev", gomock.Any()).Return(nil)

	var record *domain.RotationHistoryRecord
	m.historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *sql.Tx, r *domain.RotationHistoryRecord) error {
			record = r
			return nil
		})
	m.restaurantRepo.EXPECT().SetFeaturedTx(gomock.Any(), "rest-next", gomock.Any()).Return(nil)

	m.configRepo.EXPECT().Get().Return(activeConfig(), nil)
	m.configRepo.EXPECT().SetNextRotationAt(gomock.Any()).Return(nil)
	m.maintainer.EXPECT().Maintain(gomock.Any(), 3).Return(&maintaining.MaintenanceResult{
		Requested: 1,
		Added:     1,
	}, nil)

	result, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeScheduled})
	require.NoError(t, err)

	assert.Equal(t, "rest-prev", result.Previous.ID)
	assert.Equal(t, "rest-next", result.Next.ID)

	require.NotNil(t, record)
	assert.Equal(t, "rest-prev", record.RestaurantID)
	assert.Equal(t, "italian", record.Category)
	assert.Equal(t, featuredAt, record.StartedAt)
	assert.Equal(t, 120, record.ViewCount)
	assert.Equal(t, 14, record.ClickCount)
	assert.Equal(t, domain.RotationTypeScheduled, record.RotationType)

	assert.Contains(t, *kinds, notifying.KindRotationCompleted)
	assert.Contains(t, *kinds, notifying.KindQueueReplenished)
	assert.NotContains(t, *kinds, notifying.KindQueueLow)
}

func TestRotateFirstEverHasNoPrevious(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	next := &domain.Restaurant{ID: "rest-next", Name: "New Spot"}
	head := &domain.QueueEntry{ID: "e1", RestaurantID: "rest-next", Position: 1}

	m.queueService.EXPECT().Head().Return(head, nil)
	m.restaurantRepo.EXPECT().GetByID("rest-next").Return(next, nil)
	m.restaurantRepo.EXPECT().GetFeatured().Return(nil, nil)

	// No previous: nothing to clear, no history record.
	m.queueService.EXPECT().PromoteHeadTx(gomock.Any()).Return(head, nil)
	m.restaurantRepo.EXPECT().SetFeaturedTx(gomock.Any(), "rest-next", gomock.Any()).Return(nil)

	m.configRepo.EXPECT().Get().Return(activeConfig(), nil)
	m.configRepo.EXPECT().SetNextRotationAt(gomock.Any()).Return(nil)

	result, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeManual})
	require.NoError(t, err)
	assert.Nil(t, result.Previous)
	assert.Equal(t, "rest-next", result.Next.ID)
}

func TestRotateEmptyQueue(t *testing.T) {
	service, m := newTestRotation(t, false)
	kinds := captureNotifications(m)

	m.queueService.EXPECT().Head().Return(nil, nil)

	_, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeScheduled})
	assert.ErrorIs(t, err, ErrQueueEmpty)
	assert.Contains(t, *kinds, notifying.KindRotationFailed)
}

func TestRotateHeadMovedMidFlight(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	head := &domain.QueueEntry{ID: "e1", RestaurantID: "rest-next", Position: 1}
	m.queueService.EXPECT().Head().Return(head, nil)
	m.restaurantRepo.EXPECT().GetByID("rest-next").Return(&domain.Restaurant{ID: "rest-next"}, nil)
	m.restaurantRepo.EXPECT().GetFeatured().Return(nil, nil)

	// The head observed before the transaction no longer matches.
	m.queueService.EXPECT().PromoteHeadTx(gomock.Any()).Return(&domain.QueueEntry{ID: "e9"}, nil)

	_, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeManual})
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRotateEmergencyRemovesTargetQueueEntry(t *testing.T) {
	service, m := newTestRotation(t, true)
	kinds := captureNotifications(m)

	target := &domain.Restaurant{ID: "rest-target", Name: "Crisis Fix"}
	previous := &domain.Restaurant{ID: "rest-prev", Name: "Old", IsFeatured: true}

	m.restaurantRepo.EXPECT().GetByID("rest-target").Return(target, nil)
	m.restaurantRepo.EXPECT().GetFeatured().Return(previous, nil)

	// The target was waiting at position 3; it loses its queue slot.
	m.queueService.EXPECT().List().Return([]*domain.QueueEntry{
		{ID: "e1", RestaurantID: "rest-a", Position: 1},
		{ID: "e3", RestaurantID: "rest-target", Position: 3},
	}, nil)
	m.queueService.EXPECT().RemoveEntryTx(gomock.Any(), "e3").Return(nil)

	m.restaurantRepo.EXPECT().ClearFeaturedTx(gomock.Any(), "rest-prev", gomock.Any()).Return(nil)
	m.historyRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any()).Return(nil)
	m.restaurantRepo.EXPECT().SetFeaturedTx(gomock.Any(), "rest-target", gomock.Any()).Return(nil)

	result, err := service.Rotate(context.Background(), RotateRequest{
		Type:     domain.RotationTypeEmergency,
		TargetID: "rest-target",
	})
	require.NoError(t, err)
	assert.Equal(t, "rest-target", result.Next.ID)

	// Emergency rotations do not reschedule or replenish.
	assert.Contains(t, *kinds, notifying.KindRotationCompleted)
	assert.NotContains(t, *kinds, notifying.KindQueueReplenished)
}

func TestRotateEmergencyRejectsFeaturedTarget(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	m.restaurantRepo.EXPECT().GetByID("rest-1").Return(&domain.Restaurant{
		ID:         "rest-1",
		IsFeatured: true,
	}, nil)

	_, err := service.Rotate(context.Background(), RotateRequest{
		Type:     domain.RotationTypeEmergency,
		TargetID: "rest-1",
	})
	assert.ErrorIs(t, err, ErrTargetAlreadyFeatured)
}

func TestRotateEmergencyRejectsUnknownTarget(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	m.restaurantRepo.EXPECT().GetByID("ghost").Return(nil, nil)

	_, err := service.Rotate(context.Background(), RotateRequest{
		Type:     domain.RotationTypeEmergency,
		TargetID: "ghost",
	})
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestRotateMutualExclusion(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	started := make(chan struct{})
	release := make(chan struct{})

	// First rotation blocks inside the head read until released.
	m.queueService.EXPECT().Head().DoAndReturn(func() (*domain.QueueEntry, error) {
		close(started)
		<-release
		return nil, nil
	})

	firstDone := make(chan error, 1)
	go func() {
		_, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeScheduled})
		firstDone <- err
	}()

	<-started
	assert.True(t, service.InProgress())

	// Second rotation must bounce immediately.
	_, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeManual})
	assert.ErrorIs(t, err, ErrRotationInProgress)

	close(release)
	assert.ErrorIs(t, <-firstDone, ErrQueueEmpty)
	assert.False(t, service.InProgress())
}

func TestGetStatusReflectsLastError(t *testing.T) {
	service, m := newTestRotation(t, false)
	captureNotifications(m)

	m.queueService.EXPECT().Head().Return(nil, nil)

	_, err := service.Rotate(context.Background(), RotateRequest{Type: domain.RotationTypeScheduled})
	require.Error(t, err)

	status := service.GetStatus()
	assert.Equal(t, false, status["rotation_running"])
	assert.Contains(t, status["last_rotation_error"], "rotation queue is empty")
}
