// Package yelp adapts the external restaurant discovery API to the
// Candidate domain type consumed by the selector.
package yelp

import (
	"strings"

	"github.com/tablerota/rotation-api/infrastructure/integrator/yelp/yelpclient"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/internal/domain"
)

type DiscoveryIntegrator interface {
	Search(category string, limit int) ([]domain.Candidate, error)
}

type YelpService struct {
	cfg    *config.Config
	Client yelpclient.Client
}

func New(cfg *config.Config, client yelpclient.Client) DiscoveryIntegrator {
	return &YelpService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *YelpService) Search(category string, limit int) ([]domain.Candidate, error) {
	resp, err := s.Client.SearchBusinesses(yelpclient.SearchParams{
		Category: category,
		Location: s.cfg.Discovery.Location,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(resp.Businesses))
	for _, business := range resp.Businesses {
		candidates = append(candidates, toCandidate(business))
	}

	return candidates, nil
}

func toCandidate(business yelpclient.Business) domain.Candidate {
	categories := make([]string, 0, len(business.Categories))
	for _, category := range business.Categories {
		categories = append(categories, category.Alias)
	}

	return domain.Candidate{
		ExternalID:  business.ID,
		Name:        business.Name,
		Categories:  categories,
		Rating:      business.Rating,
		ReviewCount: business.ReviewCount,
		Address:     strings.Join(business.Location.DisplayAddress, ", "),
		Phone:       business.Phone,
		IsClosed:    business.IsClosed,
		IsClaimed:   business.IsClaimed,
	}
}
