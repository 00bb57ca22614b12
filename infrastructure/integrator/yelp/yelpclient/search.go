package yelpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

type SearchParams struct {
	Category string
	Location string
	Limit    int
}

type SearchResponse struct {
	Businesses []Business `json:"businesses"`
	Total      int        `json:"total"`
}

type Business struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	IsClosed    bool           `json:"is_closed"`
	IsClaimed   bool           `json:"is_claimed"`
	Phone       string         `json:"phone"`
	Categories  []CategoryInfo `json:"categories"`
	Location    LocationInfo   `json:"location"`
}

type CategoryInfo struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type LocationInfo struct {
	Address1       string   `json:"address1"`
	City           string   `json:"city"`
	DisplayAddress []string `json:"display_address"`
}

// SearchBusinesses queries the business search endpoint for one category.
// Transient failures come back as errors; callers decide whether to retry.
func (c *YelpClient) SearchBusinesses(params SearchParams) (*SearchResponse, error) {
	endpoint, err := url.Parse(c.config.Discovery.URL + "/businesses/search")
	if err != nil {
		return nil, fmt.Errorf("building search url: %w", err)
	}

	query := endpoint.Query()
	query.Set("categories", params.Category)
	query.Set("location", params.Location)
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("sort_by", "rating")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Discovery.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling discovery search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status":   resp.StatusCode,
			"category": params.Category,
		}).Warn("Discovery search returned non-200")
		return nil, fmt.Errorf("discovery search status %d: %s", resp.StatusCode, string(body))
	}

	searchResp := &SearchResponse{}
	if err := json.Unmarshal(body, searchResp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	return searchResp, nil
}
