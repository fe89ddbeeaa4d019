// Package ssa downloads the SSA baby names archive.
package ssa

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// Client implements domain.Fetcher over plain HTTP GET.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a download client with a total request timeout.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch downloads url and returns the response body. Any failure, including a
// non-200 status, surfaces as a *domain.FetchError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	c.logger.Info("downloading archive", "url", url)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{URL: url, Err: err}
	}

	c.logger.Info("archive downloaded",
		"url", url,
		"bytes", len(data),
		"duration", time.Since(start),
	)
	return data, nil
}
