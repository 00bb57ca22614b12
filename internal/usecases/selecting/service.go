// Package selecting scores and picks new rotation candidates from the
// external discovery source.
package selecting

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/integrator/yelp"
	"github.com/tablerota/rotation-api/infrastructure/repository"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
)

// sixMonths is the hard exclusion window for the featured selection:
// anything featured more recently is not scored at all.
const sixMonths = 6

type Selector interface {
	// SelectOne returns one new, quality-qualified candidate for queue
	// fill, or ErrNoCandidateFound after bounded retries.
	SelectOne(existingExternalIDs map[string]struct{}) (*domain.Candidate, error)
	// SelectFeatured is the stricter weekly variant: multi-factor
	// weighted scoring with a six-month re-feature exclusion.
	SelectFeatured() (*domain.Candidate, error)
}

type Service struct {
	discovery      yelp.DiscoveryIntegrator
	restaurantRepo repository.RestaurantRepository
	historyRepo    repository.RotationHistoryRepository
	cfg            config.Selection
	rng            *rand.Rand
	now            func() time.Time
}

func NewService(
	discovery yelp.DiscoveryIntegrator,
	restaurantRepo repository.RestaurantRepository,
	historyRepo repository.RotationHistoryRepository,
	cfg *config.Config,
) *Service {
	return &Service{
		discovery:      discovery,
		restaurantRepo: restaurantRepo,
		historyRepo:    historyRepo,
		cfg:            cfg.Selection,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		now:            time.Now,
	}
}

func (s *Service) drawCategory() string {
	return categoryForRoll(s.rng.Intn(totalCategoryWeight))
}

func (s *Service) SelectOne(existingExternalIDs map[string]struct{}) (*domain.Candidate, error) {
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		category := s.drawCategory()

		pool, err := s.discovery.Search(category, s.cfg.BatchSize)
		if err != nil {
			// Transient discovery failure counts as an empty pool.
			logrus.WithError(err).WithFields(logrus.Fields{
				"category": category,
				"attempt":  attempt,
			}).Warn("Discovery search failed, retrying with a fresh draw")
			continue
		}

		best := s.pickBest(pool, existingExternalIDs)
		if best != nil {
			logrus.WithFields(logrus.Fields{
				"external_id": best.ExternalID,
				"name":        best.Name,
				"category":    category,
				"attempt":     attempt,
			}).Info("Candidate selected")
			return best, nil
		}
	}

	return nil, &SelectionError{Err: ErrNoCandidateFound, Attempts: s.cfg.MaxRetries}
}

// pickBest filters out known, low-rated, and under-reviewed candidates,
// then takes the top rating×ln(reviews+1) score. Ties keep pool order.
func (s *Service) pickBest(pool []domain.Candidate, existing map[string]struct{}) *domain.Candidate {
	var best *domain.Candidate
	var bestScore float64

	for i := range pool {
		candidate := &pool[i]

		if _, known := existing[candidate.ExternalID]; known {
			continue
		}
		if candidate.Rating < s.cfg.MinRating {
			continue
		}
		if candidate.ReviewCount < s.cfg.MinReviewCount {
			continue
		}

		score := rankScore(candidate)
		if best == nil || score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}

func (s *Service) SelectFeatured() (*domain.Candidate, error) {
	recentCategories, err := s.historyRepo.RecentCategories(diversityWindow)
	if err != nil {
		logrus.WithError(err).Warn("Could not load recent categories, scoring without diversity history")
		recentCategories = nil
	}

	now := s.now()
	month := now.Month()
	reFeatureCutoff := now.AddDate(0, -sixMonths, 0)

	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		category := s.drawCategory()

		pool, err := s.discovery.Search(category, s.cfg.BatchSize)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"category": category,
				"attempt":  attempt,
			}).Warn("Discovery search failed, retrying with a fresh draw")
			continue
		}

		best, bestScore := s.pickBestFeatured(pool, recentCategories, month, reFeatureCutoff)
		if best != nil {
			logrus.WithFields(logrus.Fields{
				"external_id": best.ExternalID,
				"name":        best.Name,
				"score":       bestScore,
				"attempt":     attempt,
			}).Info("Featured candidate selected")
			return best, nil
		}
	}

	return nil, &SelectionError{Err: ErrNoCandidateFound, Attempts: s.cfg.MaxRetries}
}

func (s *Service) pickBestFeatured(
	pool []domain.Candidate,
	recentCategories []string,
	month time.Month,
	reFeatureCutoff time.Time,
) (*domain.Candidate, float64) {
	var best *domain.Candidate
	var bestScore float64

	for i := range pool {
		candidate := &pool[i]

		if candidate.Rating < s.cfg.MinRating || candidate.ReviewCount < s.cfg.MinReviewCount {
			continue
		}
		if s.featuredRecently(candidate.ExternalID, reFeatureCutoff) {
			continue
		}

		score := featuredScore(candidate, recentCategories, month)
		if best == nil || score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best, bestScore
}

func (s *Service) featuredRecently(externalID string, cutoff time.Time) bool {
	restaurant, err := s.restaurantRepo.GetByExternalID(externalID)
	if err != nil {
		logrus.WithError(err).WithField("external_id", externalID).Warn("Could not check feature history")
		return false
	}
	if restaurant == nil {
		return false
	}
	if restaurant.IsFeatured {
		return true
	}
	return restaurant.LastFeaturedAt != nil && restaurant.LastFeaturedAt.After(cutoff)
}
