// Package overpass implements the route search provider against an Overpass
// API endpoint.
package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trailatlas/trails-api/internal/core/domain"
)

// Client executes Overpass QL queries over HTTP. The underlying http.Client
// carries no timeout: a slow provider delays only the request awaiting it,
// and cancellation arrives through the request context.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(endpoint string, logger zerolog.Logger) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Execute posts the query to the interpreter endpoint and returns the raw
// response body. Any transport failure or non-2xx status is a provider error.
func (c *Client) Execute(ctx context.Context, query string) (domain.RouteData, error) {
	form := url.Values{"data": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("overpass read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().Int("status", resp.StatusCode).Msg("overpass returned non-2xx")
		return nil, fmt.Errorf("overpass status %d", resp.StatusCode)
	}

	return domain.RouteData(body), nil
}
