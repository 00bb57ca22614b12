// Package queueing implements the ordered waiting queue of rotation
// candidates. All position mutations preserve the {1..N} invariant among
// PENDING entries and run inside a single transaction.
package queueing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/pkg/utils"
)

type EnqueueRequest struct {
	RestaurantID string     `json:"restaurant_id"`
	AddedBy      string     `json:"added_by"`
	Notes        *string    `json:"notes,omitempty"`
	Position     *int       `json:"position,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

type QueueService interface {
	Enqueue(ctx context.Context, req EnqueueRequest) (*domain.QueueEntry, error)
	Dequeue(ctx context.Context, entryID string) error
	Reorder(ctx context.Context, entryID string, newPosition int) error
	BulkReorder(ctx context.Context, updates []domain.QueuePositionUpdate) error
	List() ([]*domain.QueueEntry, error)
	Head() (*domain.QueueEntry, error)
	CountPending() (int, error)
	ValidateIntegrity() (*domain.QueueIntegrityReport, error)
	RepairIntegrity(ctx context.Context) (int, error)
	PromoteHeadTx(tx *sql.Tx) (*domain.QueueEntry, error)
	RemoveEntryTx(tx *sql.Tx, entryID string) error
}

type Service struct {
	conn           postgres.Conn
	queueRepo      repository.QueueRepository
	restaurantRepo repository.RestaurantRepository
}

func NewService(
	conn postgres.Conn,
	queueRepo repository.QueueRepository,
	restaurantRepo repository.RestaurantRepository,
) QueueService {
	return &Service{
		conn:           conn,
		queueRepo:      queueRepo,
		restaurantRepo: restaurantRepo,
	}
}

func (s *Service) Enqueue(ctx context.Context, req EnqueueRequest) (*domain.QueueEntry, error) {
	restaurant, err := s.restaurantRepo.GetByID(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("loading restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, NewQueueError(ErrEntryNotFound, "", "restaurant "+req.RestaurantID+" does not exist")
	}
	if restaurant.IsFeatured {
		return nil, ErrAlreadyFeatured
	}

	existing, err := s.queueRepo.GetPendingByRestaurantID(req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("checking pending entry: %w", err)
	}
	if existing != nil {
		return nil, NewQueueError(ErrAlreadyQueued, existing.ID, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating entry id: %w", err)
	}

	entry := &domain.QueueEntry{
		ID:           id,
		RestaurantID: req.RestaurantID,
		Status:       domain.QueueEntryStatusPending,
		AddedBy:      req.AddedBy,
		Notes:        req.Notes,
		ScheduledFor: req.ScheduledFor,
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pending, err := s.queueRepo.ListPendingTx(tx)
		if err != nil {
			return err
		}

		entry.Position = len(pending) + 1
		if req.Position != nil {
			position := *req.Position
			if position < 1 || position > len(pending)+1 {
				return fmt.Errorf("%w: position %d outside [1..%d]", ErrInvalidOrder, position, len(pending)+1)
			}

			for _, write := range insertShiftPlan(pending, position) {
				if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
					return err
				}
			}
			entry.Position = position
		}

		return s.queueRepo.InsertTx(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"entry_id":      entry.ID,
		"restaurant_id": entry.RestaurantID,
		"position":      entry.Position,
	}).Info("Queue entry added")

	return entry, nil
}

func (s *Service) Dequeue(ctx context.Context, entryID string) error {
	entry, err := s.queueRepo.GetByID(entryID)
	if err != nil {
		return fmt.Errorf("loading entry: %w", err)
	}
	if entry == nil {
		return NewQueueError(ErrEntryNotFound, entryID, "")
	}
	if entry.Status != domain.QueueEntryStatusPending {
		return NewQueueError(ErrCannotRemoveActive, entryID, string(entry.Status))
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pending, err := s.queueRepo.ListPendingTx(tx)
		if err != nil {
			return err
		}

		if err := s.queueRepo.DeleteTx(tx, entryID); err != nil {
			return err
		}

		for _, write := range removalPlan(pending, entry.Position) {
			if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"entry_id": entryID,
		"position": entry.Position,
	}).Info("Queue entry removed")

	return nil
}

func (s *Service) Reorder(ctx context.Context, entryID string, newPosition int) error {
	entry, err := s.queueRepo.GetByID(entryID)
	if err != nil {
		return fmt.Errorf("loading entry: %w", err)
	}
	if entry == nil {
		return NewQueueError(ErrEntryNotFound, entryID, "")
	}
	if entry.Status != domain.QueueEntryStatusPending {
		return NewQueueError(ErrEntryNotPending, entryID, string(entry.Status))
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pending, err := s.queueRepo.ListPendingTx(tx)
		if err != nil {
			return err
		}

		writes, err := reorderPlan(pending, entryID, newPosition)
		if err != nil {
			return err
		}

		for _, write := range writes {
			if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"entry_id":     entryID,
		"new_position": newPosition,
	}).Info("Queue entry reordered")

	return nil
}

func (s *Service) BulkReorder(ctx context.Context, updates []domain.QueuePositionUpdate) error {
	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pending, err := s.queueRepo.ListPendingTx(tx)
		if err != nil {
			return err
		}

		writes, err := bulkReorderPlan(pending, updates)
		if err != nil {
			return err
		}

		for _, write := range writes {
			if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("entries", len(updates)).Info("Queue fully reordered")

	return nil
}

func (s *Service) List() ([]*domain.QueueEntry, error) {
	return s.queueRepo.ListPending()
}

func (s *Service) Head() (*domain.QueueEntry, error) {
	return s.queueRepo.Head()
}

func (s *Service) CountPending() (int, error) {
	return s.queueRepo.CountPending()
}

func (s *Service) ValidateIntegrity() (*domain.QueueIntegrityReport, error) {
	pending, err := s.queueRepo.ListPending()
	if err != nil {
		return nil, fmt.Errorf("listing pending entries: %w", err)
	}

	return auditPositions(pending), nil
}

// RepairIntegrity renumbers all PENDING entries by ascending current
// position and returns how many rows moved. Safe to call repeatedly.
func (s *Service) RepairIntegrity(ctx context.Context) (int, error) {
	repaired := 0

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		pending, err := s.queueRepo.ListPendingTx(tx)
		if err != nil {
			return err
		}

		writes := repairPlan(pending)
		for _, write := range writes {
			if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
				return err
			}
		}

		repaired = len(writes)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if repaired > 0 {
		logrus.WithField("repaired", repaired).Warn("Queue positions repaired")
	}

	return repaired, nil
}

// PromoteHeadTx retires the position-1 entry as COMPLETED and shifts every
// remaining pending entry down one. It runs inside the caller's transaction
// so the rotation swap and the compaction commit or roll back together.
func (s *Service) PromoteHeadTx(tx *sql.Tx) (*domain.QueueEntry, error) {
	pending, err := s.queueRepo.ListPendingTx(tx)
	if err != nil {
		return nil, err
	}

	var head *domain.QueueEntry
	for _, entry := range pending {
		if entry.Position == 1 {
			head = entry
			break
		}
	}
	if head == nil {
		return nil, nil
	}

	if err := s.queueRepo.CompleteTx(tx, head.ID); err != nil {
		return nil, err
	}

	for _, write := range removalPlan(pending, head.Position) {
		if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
			return nil, err
		}
	}

	return head, nil
}

// RemoveEntryTx deletes one pending entry and compacts around it, inside
// the caller's transaction.
func (s *Service) RemoveEntryTx(tx *sql.Tx, entryID string) error {
	pending, err := s.queueRepo.ListPendingTx(tx)
	if err != nil {
		return err
	}

	var target *domain.QueueEntry
	for _, entry := range pending {
		if entry.ID == entryID {
			target = entry
			break
		}
	}
	if target == nil {
		return NewQueueError(ErrEntryNotFound, entryID, "")
	}

	if err := s.queueRepo.DeleteTx(tx, entryID); err != nil {
		return err
	}

	for _, write := range removalPlan(pending, target.Position) {
		if err := s.queueRepo.SetPositionTx(tx, write.entryID, write.position); err != nil {
			return err
		}
	}

	return nil
}
