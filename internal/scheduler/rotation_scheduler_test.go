package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/tablerota/rotation-api/infrastructure/repository/mocks"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/rotating"
	rotatingmocks "github.com/tablerota/rotation-api/internal/usecases/rotating/mocks"
	"go.uber.org/mock/gomock"
)

type schedulerMocks struct {
	configRepo      *repomocks.MockRotationConfigRepository
	rotationService *rotatingmocks.MockRotationService
}

func newTestScheduler(t *testing.T, now time.Time) (*RotationSchedulerService, schedulerMocks) {
	ctrl := gomock.NewController(t)

	m := schedulerMocks{
		configRepo:      repomocks.NewMockRotationConfigRepository(ctrl),
		rotationService: rotatingmocks.NewMockRotationService(ctrl),
	}

	service := &RotationSchedulerService{
		config: RotationSchedulerConfig{
			CronSchedule: "*/5 * * * *",
			TickWindow:   15 * time.Minute,
			Enabled:      true,
		},
		configRepo:      m.configRepo,
		rotationService: m.rotationService,
		now:             func() time.Time { return now },
	}

	return service, m
}

func tickConfig(nextRotationAt *time.Time) *domain.RotationConfig {
	return &domain.RotationConfig{
		ID:             1,
		DayOfWeek:      1,
		TimeOfDay:      "09:00",
		Timezone:       "UTC",
		IsActive:       true,
		MinQueueSize:   3,
		NextRotationAt: nextRotationAt,
	}
}

func TestTickInactiveConfigDoesNothing(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	config := tickConfig(nil)
	config.IsActive = false
	m.configRepo.EXPECT().Get().Return(config, nil)

	service.Tick(context.Background())

	assert.Equal(t, "inactive", service.GetStatus()["last_tick_outcome"])
}

func TestTickSchedulesFirstOccurrence(t *testing.T) {
	// Monday 08:00: the configured Monday 09:00 slot is an hour away.
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	m.configRepo.EXPECT().Get().Return(tickConfig(nil), nil)
	m.configRepo.EXPECT().
		SetNextRotationAt(time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)).
		Return(nil)

	service.Tick(context.Background())

	assert.Equal(t, "scheduled first occurrence", service.GetStatus()["last_tick_outcome"])
}

func TestTickNotDue(t *testing.T) {
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	next := now.Add(time.Hour)
	m.configRepo.EXPECT().Get().Return(tickConfig(&next), nil)

	service.Tick(context.Background())

	assert.Equal(t, "not due", service.GetStatus()["last_tick_outcome"])
}

func TestTickFiresDueRotation(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 2, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	next := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	m.configRepo.EXPECT().Get().Return(tickConfig(&next), nil)

	m.rotationService.EXPECT().
		Rotate(gomock.Any(), rotating.RotateRequest{Type: domain.RotationTypeScheduled}).
		Return(&domain.RotationResult{}, nil)

	service.Tick(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "rotated", status["last_tick_outcome"])
	assert.Equal(t, now, status["last_fired_at"])
}

func TestTickMissedSlotReschedulesWithoutFiring(t *testing.T) {
	// Three hours late: well past the tick window, so firing now would run
	// a stale rotation.
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	next := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	m.configRepo.EXPECT().Get().Return(tickConfig(&next), nil)
	m.configRepo.EXPECT().
		SetNextRotationAt(time.Date(2026, time.June, 22, 9, 0, 0, 0, time.UTC)).
		Return(nil)

	service.Tick(context.Background())

	assert.Equal(t, "missed slot rescheduled", service.GetStatus()["last_tick_outcome"])
}

func TestTickRotationInProgressIsRoutine(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 2, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	next := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	m.configRepo.EXPECT().Get().Return(tickConfig(&next), nil)
	m.rotationService.EXPECT().
		Rotate(gomock.Any(), gomock.Any()).
		Return(nil, rotating.ErrRotationInProgress)

	service.Tick(context.Background())

	// No reschedule: the next tick re-checks the same slot.
	assert.Equal(t, "rotation in progress", service.GetStatus()["last_tick_outcome"])
}

func TestTickEmptyQueueSkipsSlot(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 2, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	next := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	m.configRepo.EXPECT().Get().Return(tickConfig(&next), nil)
	m.rotationService.EXPECT().
		Rotate(gomock.Any(), gomock.Any()).
		Return(nil, rotating.ErrQueueEmpty)
	m.configRepo.EXPECT().
		SetNextRotationAt(time.Date(2026, time.June, 22, 9, 0, 0, 0, time.UTC)).
		Return(nil)

	service.Tick(context.Background())

	assert.Equal(t, "queue empty", service.GetStatus()["last_tick_outcome"])
}

func TestTickConfigLoadFailure(t *testing.T) {
	now := time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)
	service, m := newTestScheduler(t, now)

	m.configRepo.EXPECT().Get().Return(nil, errors.New("connection refused"))

	service.Tick(context.Background())

	assert.Equal(t, "config load failed", service.GetStatus()["last_tick_outcome"])
}
