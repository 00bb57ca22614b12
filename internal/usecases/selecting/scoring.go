package selecting

import (
	"math"
	"time"

	"github.com/tablerota/rotation-api/internal/domain"
)

// diversityWindow is how many recent rotation cycles count against a
// candidate's category.
const diversityWindow = 6

const (
	weightDiversity    = 0.30
	weightSeasonal     = 0.25
	weightQuality      = 0.30
	weightAvailability = 0.15
)

// rankScore orders queue-fill candidates by rating weighted with the
// evidentiary strength of the review count.
func rankScore(candidate *domain.Candidate) float64 {
	return candidate.Rating * math.Log(float64(candidate.ReviewCount)+1)
}

// diversityScore penalizes categories featured in the recent window:
// 1 - occurrences/window.
func diversityScore(category string, recentCategories []string) float64 {
	occurrences := 0
	for _, recent := range recentCategories {
		if recent == category {
			occurrences++
		}
	}
	if occurrences > diversityWindow {
		occurrences = diversityWindow
	}
	return 1.0 - float64(occurrences)/float64(diversityWindow)
}

func seasonalScore(categories []string, month time.Month) float64 {
	if isSeasonalMatch(categories, month) {
		return 1.0
	}
	return 0.5
}

// qualityScore mixes normalized rating with a log-scaled review count
// capped at log10(1000) worth of reviews.
func qualityScore(rating float64, reviewCount int) float64 {
	normalizedRating := (rating - 1.0) / 4.0
	normalizedReviews := math.Log10(float64(reviewCount)+1) / 3.0
	if normalizedReviews > 1.0 {
		normalizedReviews = 1.0
	}
	return 0.7*normalizedRating + 0.3*normalizedReviews
}

func availabilityScore(candidate *domain.Candidate) float64 {
	score := 0.5
	if !candidate.IsClosed {
		score += 0.3
	}
	if candidate.IsClaimed {
		score += 0.2
	}
	if candidate.Address != "" {
		score += 0.1
	}
	if candidate.Phone != "" {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// featuredScore is the stricter multi-factor score used by the weekly
// featured selection (distinct from the queue-fill ranking above).
func featuredScore(candidate *domain.Candidate, recentCategories []string, month time.Month) float64 {
	return weightDiversity*diversityScore(candidate.PrimaryCategory(), recentCategories) +
		weightSeasonal*seasonalScore(candidate.Categories, month) +
		weightQuality*qualityScore(candidate.Rating, candidate.ReviewCount) +
		weightAvailability*availabilityScore(candidate)
}
