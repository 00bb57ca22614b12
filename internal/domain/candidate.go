package domain

// Candidate is an externally discovered restaurant under consideration for
// the queue. Read-only input to scoring; never persisted as-is.
type Candidate struct {
	ExternalID  string   `json:"external_id"`
	Name        string   `json:"name"`
	Categories  []string `json:"categories"`
	Rating      float64  `json:"rating"` // 1.0–5.0
	ReviewCount int      `json:"review_count"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	IsClosed    bool     `json:"is_closed"`
	IsClaimed   bool     `json:"is_claimed"`
}

func (c *Candidate) PrimaryCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}
