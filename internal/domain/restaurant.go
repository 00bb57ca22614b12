package domain

import (
	"time"
)

type Restaurant struct {
	ID             string     `json:"id"`
	ExternalID     string     `json:"external_id"`
	Name           string     `json:"name"`
	Categories     []string   `json:"categories"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"review_count"`
	Address        *string    `json:"address"`
	Phone          *string    `json:"phone"`
	IsFeatured     bool       `json:"is_featured"`
	FeaturedAt     *time.Time `json:"featured_at"`
	LastFeaturedAt *time.Time `json:"last_featured_at"`
	TimesFeatured  int        `json:"times_featured"`
	ViewCount      int        `json:"view_count"`
	ClickCount     int        `json:"click_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// PrimaryCategory is the category used for diversity scoring.
func (r *Restaurant) PrimaryCategory() string {
	if len(r.Categories) == 0 {
		return ""
	}
	return r.Categories[0]
}
