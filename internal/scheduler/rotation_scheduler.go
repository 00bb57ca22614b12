// Package scheduler drives the periodic tick that fires due rotations.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/rotating"
)

type RotationSchedulerConfig struct {
	CronSchedule string
	TickWindow   time.Duration
	Enabled      bool
}

// RotationSchedulerService wakes up on a cron tick, compares wall-clock
// time against the configured next-rotation timestamp, and fires the
// rotation engine when the slot is due.
type RotationSchedulerService struct {
	scheduler       *gocron.Scheduler
	config          RotationSchedulerConfig
	configRepo      repository.RotationConfigRepository
	rotationService rotating.RotationService

	tickMutex       sync.Mutex
	lastTickAt      time.Time
	lastFiredAt     time.Time
	lastTickOutcome string

	now func() time.Time
}

func NewRotationSchedulerService(
	configRepo repository.RotationConfigRepository,
	rotationService rotating.RotationService,
	cfg *config.Config,
) *RotationSchedulerService {
	schedulerConfig := RotationSchedulerConfig{
		CronSchedule: cfg.RotationTick.CronSchedule,
		TickWindow:   time.Duration(cfg.RotationTick.TickWindowMinutes) * time.Minute,
		Enabled:      cfg.RotationTick.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": schedulerConfig.CronSchedule,
		"tick_window":   schedulerConfig.TickWindow.String(),
	}).Info("Rotation scheduler configuration loaded")

	return &RotationSchedulerService{
		scheduler:       scheduler,
		config:          schedulerConfig,
		configRepo:      configRepo,
		rotationService: rotationService,
		now:             time.Now,
	}
}

func (s *RotationSchedulerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Rotation scheduler disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting rotation scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Tick(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling rotation tick: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping rotation scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Tick runs one due-check. Exported so an admin endpoint can force a check
// without waiting for the next cron slot.
func (s *RotationSchedulerService) Tick(ctx context.Context) {
	s.tickMutex.Lock()
	s.lastTickAt = s.now()
	s.tickMutex.Unlock()

	rotationConfig, err := s.configRepo.Get()
	if err != nil {
		logrus.WithError(err).Error("Rotation tick could not load config")
		s.recordOutcome("config load failed")
		return
	}
	if rotationConfig == nil || !rotationConfig.IsActive {
		s.recordOutcome("inactive")
		return
	}

	if rotationConfig.NextRotationAt == nil {
		s.scheduleNext(rotationConfig)
		s.recordOutcome("scheduled first occurrence")
		return
	}

	now := s.now()
	next := *rotationConfig.NextRotationAt

	if now.Before(next) {
		s.recordOutcome("not due")
		return
	}

	// A slot older than one tick window means ticks were missed (process
	// down, clock jump). Reschedule instead of firing a stale rotation.
	if now.Sub(next) > s.config.TickWindow {
		logrus.WithFields(logrus.Fields{
			"next_rotation_at": next,
			"late_by":          now.Sub(next).String(),
		}).Warn("Missed rotation slot, rescheduling without firing")
		s.scheduleNext(rotationConfig)
		s.recordOutcome("missed slot rescheduled")
		return
	}

	logrus.WithField("next_rotation_at", next).Info("Rotation due, firing")

	_, err = s.rotationService.Rotate(ctx, rotating.RotateRequest{
		Type: domain.RotationTypeScheduled,
	})
	switch {
	case err == nil:
		s.tickMutex.Lock()
		s.lastFiredAt = s.now()
		s.tickMutex.Unlock()
		s.recordOutcome("rotated")
	case errors.Is(err, rotating.ErrRotationInProgress):
		// Routine: a manual rotation is mid-flight. The next tick will
		// re-check.
		logrus.Info("Rotation already in progress, tick skipped")
		s.recordOutcome("rotation in progress")
	case errors.Is(err, rotating.ErrQueueEmpty):
		logrus.Warn("Scheduled rotation skipped: queue empty")
		s.scheduleNext(rotationConfig)
		s.recordOutcome("queue empty")
	default:
		logrus.WithError(err).Error("Scheduled rotation failed")
		s.recordOutcome("rotation failed")
	}
}

func (s *RotationSchedulerService) scheduleNext(rotationConfig *domain.RotationConfig) {
	next, err := rotationConfig.NextOccurrence(s.now())
	if err != nil {
		logrus.WithError(err).Error("Could not compute next rotation occurrence")
		return
	}

	if err := s.configRepo.SetNextRotationAt(next); err != nil {
		logrus.WithError(err).Error("Could not persist next rotation occurrence")
		return
	}

	logrus.WithField("next_rotation_at", next).Info("Next rotation scheduled")
}

func (s *RotationSchedulerService) recordOutcome(outcome string) {
	s.tickMutex.Lock()
	s.lastTickOutcome = outcome
	s.tickMutex.Unlock()
}

func (s *RotationSchedulerService) GetStatus() map[string]any {
	s.tickMutex.Lock()
	defer s.tickMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"tick_window":       s.config.TickWindow.String(),
		"last_tick_at":      s.lastTickAt,
		"last_fired_at":     s.lastFiredAt,
		"last_tick_outcome": s.lastTickOutcome,
	}
}
