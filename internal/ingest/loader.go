package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Loader fetches the major projects CSV asset over HTTP.
// A failed fetch is terminal for the load attempt; there is no retry loop,
// the caller decides whether to fall back to a cached dataset.
type Loader struct {
	url    string
	client *http.Client
}

// NewLoader creates a loader for the given asset URL.
func NewLoader(url string, timeout time.Duration) *Loader {
	return &Loader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the CSV payload and runs ingestion on it.
func (l *Loader) Fetch(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dataset fetch returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset body: %w", err)
	}

	return Ingest(string(payload)), nil
}
