// Package maintaining tops the rotation queue back up to its target size
// by repeatedly invoking the candidate selector.
package maintaining

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	"github.com/tablerota/rotation-api/internal/usecases/selecting"
	"github.com/tablerota/rotation-api/pkg/utils"
)

const maintainerActor = "queue-maintainer"

type AttemptResult struct {
	Success      bool   `json:"success"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Error        string `json:"error,omitempty"`
}

type MaintenanceResult struct {
	Requested int             `json:"requested"`
	Added     int             `json:"added"`
	Results   []AttemptResult `json:"results"`
}

type Maintainer interface {
	Maintain(ctx context.Context, targetSize int) (*MaintenanceResult, error)
}

type Service struct {
	selector       selecting.Selector
	queueService   queueing.QueueService
	restaurantRepo repository.RestaurantRepository
	requestDelay   time.Duration
	sleep          func(time.Duration)
}

func NewService(
	selector selecting.Selector,
	queueService queueing.QueueService,
	restaurantRepo repository.RestaurantRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		selector:       selector,
		queueService:   queueService,
		restaurantRepo: restaurantRepo,
		requestDelay:   time.Duration(cfg.Queue.RequestDelaySeconds) * time.Second,
		sleep:          time.Sleep,
	}
}

// Maintain computes the deficit against targetSize and draws candidates one
// at a time, enqueueing each success immediately so later draws see the
// updated known set. A failed draw is logged and does not abort the rest.
func (s *Service) Maintain(ctx context.Context, targetSize int) (*MaintenanceResult, error) {
	pending, err := s.queueService.CountPending()
	if err != nil {
		return nil, err
	}

	deficit := targetSize - pending
	if deficit < 0 {
		deficit = 0
	}

	result := &MaintenanceResult{
		Requested: deficit,
		Results:   make([]AttemptResult, 0, deficit),
	}

	if deficit == 0 {
		logrus.WithFields(logrus.Fields{
			"pending": pending,
			"target":  targetSize,
		}).Debug("Queue already at target size")
		return result, nil
	}

	existing, err := s.restaurantRepo.ListExternalIDs()
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pending": pending,
		"target":  targetSize,
		"deficit": deficit,
	}).Info("Replenishing rotation queue")

	for i := 0; i < deficit; i++ {
		if i > 0 && s.requestDelay > 0 {
			// Keep some distance between discovery calls.
			s.sleep(s.requestDelay)
		}

		attempt := s.addOne(ctx, existing)
		result.Results = append(result.Results, attempt)
		if attempt.Success {
			result.Added++
		}
	}

	logrus.WithFields(logrus.Fields{
		"requested": result.Requested,
		"added":     result.Added,
	}).Info("Queue replenishment finished")

	return result, nil
}

func (s *Service) addOne(ctx context.Context, existing map[string]struct{}) AttemptResult {
	candidate, err := s.selector.SelectOne(existing)
	if err != nil {
		logrus.WithError(err).Warn("Candidate draw failed")
		return AttemptResult{Success: false, Error: err.Error()}
	}

	restaurant, err := s.persistCandidate(candidate)
	if err != nil {
		logrus.WithError(err).WithField("external_id", candidate.ExternalID).Error("Could not persist candidate")
		return AttemptResult{Success: false, Error: err.Error()}
	}

	_, err = s.queueService.Enqueue(ctx, queueing.EnqueueRequest{
		RestaurantID: restaurant.ID,
		AddedBy:      maintainerActor,
	})
	if err != nil {
		if errors.Is(err, queueing.ErrAlreadyQueued) || errors.Is(err, queueing.ErrAlreadyFeatured) {
			logrus.WithField("restaurant_id", restaurant.ID).Info("Candidate already rotating, skipping")
		} else {
			logrus.WithError(err).WithField("restaurant_id", restaurant.ID).Error("Could not enqueue candidate")
		}
		return AttemptResult{Success: false, RestaurantID: restaurant.ID, Name: restaurant.Name, Error: err.Error()}
	}

	// Later draws must not pick the same place again.
	existing[candidate.ExternalID] = struct{}{}

	return AttemptResult{Success: true, RestaurantID: restaurant.ID, Name: restaurant.Name}
}

func (s *Service) persistCandidate(candidate *domain.Candidate) (*domain.Restaurant, error) {
	if existing, err := s.restaurantRepo.GetByExternalID(candidate.ExternalID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	restaurant := &domain.Restaurant{
		ID:          id,
		ExternalID:  candidate.ExternalID,
		Name:        candidate.Name,
		Categories:  candidate.Categories,
		Rating:      candidate.Rating,
		ReviewCount: candidate.ReviewCount,
	}
	if candidate.Address != "" {
		restaurant.Address = &candidate.Address
	}
	if candidate.Phone != "" {
		restaurant.Phone = &candidate.Phone
	}

	if err := s.restaurantRepo.Create(restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}
