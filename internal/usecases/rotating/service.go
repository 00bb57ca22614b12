// Package rotating implements the state machine that swaps the featured
// restaurant with the queue head. Only one rotation may run at a time,
// system-wide; everything inside a swap is one atomic transaction.
package rotating

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/maintaining"
	"github.com/tablerota/rotation-api/internal/usecases/notifying"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
)

type RotateRequest struct {
	Type        domain.RotationType `json:"type"`
	TriggeredBy *string             `json:"triggered_by,omitempty"`
	TargetID    string              `json:"target_id,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

type RotationService interface {
	Rotate(ctx context.Context, req RotateRequest) (*domain.RotationResult, error)
	InProgress() bool
	GetStatus() map[string]any
}

type Service struct {
	conn           postgres.Conn
	restaurantRepo repository.RestaurantRepository
	historyRepo    repository.RotationHistoryRepository
	configRepo     repository.RotationConfigRepository
	queueService   queueing.QueueService
	maintainer     maintaining.Maintainer
	notifier       notifying.Notifier
	replenish      bool

	mu                sync.Mutex
	rotationRunning   bool
	lastRotationAt    time.Time
	lastRotationError string

	now func() time.Time
}

func NewService(
	conn postgres.Conn,
	restaurantRepo repository.RestaurantRepository,
	historyRepo repository.RotationHistoryRepository,
	configRepo repository.RotationConfigRepository,
	queueService queueing.QueueService,
	maintainer maintaining.Maintainer,
	notifier notifying.Notifier,
	replenish bool,
) *Service {
	return &Service{
		conn:           conn,
		restaurantRepo: restaurantRepo,
		historyRepo:    historyRepo,
		configRepo:     configRepo,
		queueService:   queueService,
		maintainer:     maintainer,
		notifier:       notifier,
		replenish:      replenish,
		now:            time.Now,
	}
}

// Rotate performs one featured swap. Scheduled and manual triggers consume
// the queue head; emergency rotations target an admin-chosen restaurant
// and leave the waiting queue alone.
func (s *Service) Rotate(ctx context.Context, req RotateRequest) (*domain.RotationResult, error) {
	if !s.tryAcquire() {
		return nil, &RotationError{Err: ErrRotationInProgress, RotationType: string(req.Type)}
	}
	defer s.release()

	var (
		result *domain.RotationResult
		err    error
	)

	switch req.Type {
	case domain.RotationTypeEmergency:
		result, err = s.rotateEmergency(ctx, req)
	default:
		result, err = s.rotateFromQueue(ctx, req)
	}

	s.mu.Lock()
	s.lastRotationAt = s.now()
	if err != nil {
		s.lastRotationError = err.Error()
	} else {
		s.lastRotationError = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.notifier.Notify(notifying.RotationFailed(req.Type, err.Error()))
		return nil, err
	}

	previousName := ""
	if result.Previous != nil {
		previousName = result.Previous.Name
	}
	s.notifier.Notify(notifying.RotationCompleted(req.Type, previousName, result.Next.Name))

	if req.Type != domain.RotationTypeEmergency {
		s.afterQueueRotation(ctx)
	}

	return result, nil
}

func (s *Service) tryAcquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rotationRunning {
		return false
	}
	s.rotationRunning = true
	return true
}

func (s *Service) release() {
	s.mu.Lock()
	s.rotationRunning = false
	s.mu.Unlock()
}

func (s *Service) InProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotationRunning
}

func (s *Service) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"rotation_running":    s.rotationRunning,
		"last_rotation_at":    s.lastRotationAt,
		"last_rotation_error": s.lastRotationError,
	}
}

func (s *Service) rotateFromQueue(ctx context.Context, req RotateRequest) (*domain.RotationResult, error) {
	head, err := s.queueService.Head()
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, &RotationError{Err: ErrQueueEmpty, RotationType: string(req.Type)}
	}

	next, err := s.restaurantRepo.GetByID(head.RestaurantID)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, &RotationError{
			Err:          ErrTargetNotFound,
			RotationType: string(req.Type),
			Details:      "queue head references restaurant " + head.RestaurantID,
		}
	}

	previous, err := s.restaurantRepo.GetFeatured()
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		promoted, err := s.queueService.PromoteHeadTx(tx)
		if err != nil {
			return err
		}
		if promoted == nil || promoted.ID != head.ID {
			// Head changed between the read and the transaction.
			return &RotationError{Err: ErrQueueEmpty, RotationType: string(req.Type), Details: "queue head moved"}
		}

		return s.swapTx(tx, previous, next, now, req)
	})
	if err != nil {
		return nil, err
	}

	s.logRotation(req, previous, next)

	return &domain.RotationResult{Previous: previous, Next: next}, nil
}

func (s *Service) rotateEmergency(ctx context.Context, req RotateRequest) (*domain.RotationResult, error) {
	next, err := s.restaurantRepo.GetByID(req.TargetID)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, &RotationError{Err: ErrTargetNotFound, RotationType: string(req.Type), Details: req.TargetID}
	}
	if next.IsFeatured {
		return nil, &RotationError{Err: ErrTargetAlreadyFeatured, RotationType: string(req.Type), Details: req.TargetID}
	}

	previous, err := s.restaurantRepo.GetFeatured()
	if err != nil {
		return nil, err
	}

	targetEntry, err := s.pendingEntryFor(req.TargetID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// A restaurant may not be featured and queued at once, so an
		// emergency target that was waiting loses its queue slot.
		if targetEntry != nil {
			if err := s.queueService.RemoveEntryTx(tx, targetEntry.ID); err != nil {
				return err
			}
		}

		return s.swapTx(tx, previous, next, now, req)
	})
	if err != nil {
		return nil, err
	}

	s.logRotation(req, previous, next)

	return &domain.RotationResult{Previous: previous, Next: next}, nil
}

// swapTx is the atomic core shared by every trigger: retire the previous
// featured restaurant, write its history record, promote the next one.
func (s *Service) swapTx(tx *sql.Tx, previous, next *domain.Restaurant, now time.Time, req RotateRequest) error {
	if previous != nil {
		if err := s.restaurantRepo.ClearFeaturedTx(tx, previous.ID, now); err != nil {
			return err
		}

		startedAt := now
		if previous.FeaturedAt != nil {
			startedAt = *previous.FeaturedAt
		}

		record := &domain.RotationHistoryRecord{
			ID:           uuid.New().String(),
			RestaurantID: previous.ID,
			Category:     previous.PrimaryCategory(),
			StartedAt:    startedAt,
			EndedAt:      now,
			ViewCount:    previous.ViewCount,
			ClickCount:   previous.ClickCount,
			RotationType: req.Type,
			TriggeredBy:  req.TriggeredBy,
			Notes:        req.Notes,
		}
		if err := s.historyRepo.InsertTx(tx, record); err != nil {
			return err
		}
	}

	return s.restaurantRepo.SetFeaturedTx(tx, next.ID, now)
}

func (s *Service) pendingEntryFor(restaurantID string) (*domain.QueueEntry, error) {
	entries, err := s.queueService.List()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.RestaurantID == restaurantID {
			return entry, nil
		}
	}
	return nil, nil
}

// afterQueueRotation reschedules the next run and tops the queue back up.
// Both are best-effort: the swap already committed and stays committed.
func (s *Service) afterQueueRotation(ctx context.Context) {
	config, err := s.configRepo.Get()
	if err != nil || config == nil {
		logrus.WithError(err).Warn("Could not load rotation config after rotation")
		return
	}

	if next, err := config.NextOccurrence(s.now()); err != nil {
		logrus.WithError(err).Error("Could not compute next rotation time")
	} else if err := s.configRepo.SetNextRotationAt(next); err != nil {
		logrus.WithError(err).Error("Could not persist next rotation time")
	} else {
		logrus.WithField("next_rotation_at", next).Info("Next rotation scheduled")
	}

	if !s.replenish {
		return
	}

	result, err := s.maintainer.Maintain(ctx, config.MinQueueSize)
	if err != nil {
		logrus.WithError(err).Error("Queue replenishment after rotation failed")
		s.notifier.Notify(notifying.QueueLow(0, config.MinQueueSize))
		return
	}

	if result.Requested > 0 {
		s.notifier.Notify(notifying.QueueReplenished(result.Added, result.Requested))
	}
	if result.Added < result.Requested {
		pending, countErr := s.queueService.CountPending()
		if countErr != nil {
			pending = 0
		}
		s.notifier.Notify(notifying.QueueLow(pending, config.MinQueueSize))
	}
}

func (s *Service) logRotation(req RotateRequest, previous, next *domain.Restaurant) {
	fields := logrus.Fields{
		"rotation_type": req.Type,
		"next_id":       next.ID,
		"next_name":     next.Name,
	}
	if previous != nil {
		fields["previous_id"] = previous.ID
	}
	if req.TriggeredBy != nil {
		fields["triggered_by"] = *req.TriggeredBy
	}
	logrus.WithFields(fields).Info("Featured restaurant rotated")
}
