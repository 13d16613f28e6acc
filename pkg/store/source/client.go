package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Keshav-GC/SOV-MTD-Report/pkg/models/domain"
)

// HTTPClient is the subset of http.Client the record source needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the raw impression feed from its HTTP source. This is
// the only asynchronous boundary of the system: timeouts, retries and
// cancellation live here, never inside the pivot pipeline.
type Client struct {
	httpc      HTTPClient
	url        string
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a record source for the given feed URL. A nil
// httpc falls back to a default client with a 30s timeout.
func NewClient(httpc HTTPClient, url string) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpc:      httpc,
		url:        url,
		maxRetries: 3,
		baseDelay:  100 * time.Millisecond,
	}
}

// FetchRecords retrieves the feed as a JSON array of raw records,
// retrying transient failures with exponential backoff.
func (c *Client) FetchRecords(ctx context.Context) ([]domain.RawRecord, error) {
	logger := zerolog.Ctx(ctx)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(1<<(attempt-1)) * c.baseDelay
			logger.Warn().Err(lastErr).Dur("delay", delay).Msg("retrying record fetch")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		records, err := c.fetchOnce(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to fetch records from %s: %w", c.url, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("non-2xx response: %d body=%s", resp.StatusCode, string(body))
	}

	var records []domain.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode record feed: %w", err)
	}
	return records, nil
}
