package swapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/couchcryptid/planet-catalog/internal/observability"
)

// DefaultURL is the public SWAPI planets endpoint.
const DefaultURL = "https://swapi.dev/api/planets/"

// Client implements domain.RecordSource against the SWAPI planets endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a SWAPI client for the given planets endpoint.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchRecords issues a single GET for the first page of planets. Non-2xx
// responses, transport failures and undecodable bodies are all reported as
// *domain.NetworkError.
func (c *Client) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("transport_error").Inc()
		return nil, &domain.NetworkError{Err: fmt.Errorf("planets request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.FetchRequests.WithLabelValues("http_error").Inc()
		c.logger.Warn("catalog returned error status",
			"url", c.url,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return nil, &domain.NetworkError{StatusCode: resp.StatusCode}
	}

	page, err := DecodePage(resp.Body)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("transport_error").Inc()
		return nil, &domain.NetworkError{Err: err}
	}
	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	c.metrics.RecordsFetched.Add(float64(len(page.Records)))

	c.logger.Debug("catalog fetched",
		"url", c.url,
		"records", len(page.Records),
		"total", page.Count,
		"duration", time.Since(start),
	)
	return page.Records, nil
}
