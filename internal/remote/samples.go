// ABOUTME: Remote sample-content fetcher used to seed empty collections.
// ABOUTME: Single request, short timeout, failure degrades to an empty list.

package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Sample is one unit of remote seed content.
type Sample struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SampleFetcher supplies seed content when a user's note collection is empty.
// Implementations must tolerate network failure by returning an empty list;
// the caller then falls back to a synthesized welcome note.
type SampleFetcher interface {
	Fetch(ctx context.Context, limit int) []Sample
}

// HTTPSampleFetcher pulls placeholder posts from a JSONPlaceholder-style API.
type HTTPSampleFetcher struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewHTTPSampleFetcher(baseURL string, log zerolog.Logger) *HTTPSampleFetcher {
	return &HTTPSampleFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

// Fetch requests up to limit samples. No retries: on any failure it logs and
// returns an empty list so the core can continue offline.
func (f *HTTPSampleFetcher) Fetch(ctx context.Context, limit int) []Sample {
	url := fmt.Sprintf("%s/posts?_limit=%d", f.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Warn().Err(err).Msg("build sample request")
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn().Err(err).Msg("fetch sample notes")
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn().Int("status", resp.StatusCode).Msg("sample API responded with error")
		return nil
	}

	var samples []Sample
	if err := json.NewDecoder(resp.Body).Decode(&samples); err != nil {
		f.log.Warn().Err(err).Msg("decode sample notes")
		return nil
	}
	return samples
}
