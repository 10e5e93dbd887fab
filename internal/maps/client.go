// README: Shared outbound HTTP helper for the upstream adapters.
package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const retryBackoff = 300 * time.Millisecond

// apiClient wraps net/http with a per-request timeout and a single retry
// with backoff for transport-level failures. Non-2xx responses are not
// retried; they map to adapter-level failure results.
type apiClient struct {
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

func newAPIClient(timeout time.Duration, userAgent string, log *zap.Logger) *apiClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &apiClient{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
		log:       log,
	}
}

func (c *apiClient) getJSON(ctx context.Context, url string, out any) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			c.log.Debug("retrying upstream call", zap.String("url", url), zap.Error(lastErr))
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("upstream status %d", resp.StatusCode)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("request failed: %w", lastErr)
}
