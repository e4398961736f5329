// Package unsplash is a minimal client for the Unsplash photo search API.
package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.unsplash.com"

// Searcher returns the URL of the best photo for a query, or "" when the
// search produced no result.
type Searcher interface {
	SearchPhoto(ctx context.Context, query, orientation string) (string, error)
}

// Client implements Searcher over the Unsplash REST API. The image lookup
// policy is a single retry on transient failures, then the caller falls back
// to a placeholder.
type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(accessKey string, logger *zap.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 1
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = 10 * time.Second

	return &Client{
		accessKey:  accessKey,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchPhoto looks up one landscape/portrait/squarish photo for the query.
func (c *Client) SearchPhoto(ctx context.Context, query, orientation string) (string, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("orientation", orientation)
	params.Set("per_page", "1")
	params.Set("content_filter", "high")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("building photo search request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("photo search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding photo search response: %w", err)
	}

	if len(body.Results) == 0 {
		c.logger.Debug("photo search returned no results", zap.String("query", query))
		return "", nil
	}
	return body.Results[0].URLs.Regular, nil
}
