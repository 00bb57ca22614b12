package yelpclient

import (
	"net/http"
	"time"

	"github.com/tablerota/rotation-api/internal/config"
)

type Client interface {
	SearchBusinesses(params SearchParams) (*SearchResponse, error)
}

type YelpClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Discovery.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &YelpClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
