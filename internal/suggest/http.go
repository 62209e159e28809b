package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient calls the suggestion proxy over HTTP. The proxy is opaque: it
// accepts {tags, year} and returns {suggestions: [...]}.
type HTTPClient struct {
	url    string
	client *http.Client
}

// NewHTTPClient creates a Suggester backed by the proxy at url.
func NewHTTPClient(url string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type suggestRequest struct {
	Tags []string `json:"tags"`
	Year int      `json:"year"`
}

type suggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

func (c *HTTPClient) SuggestEvents(ctx context.Context, tags []string, year int) ([]Suggestion, error) {
	payload, err := json.Marshal(suggestRequest{Tags: tags, Year: year})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrService, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: proxy returned status %d", ErrService, resp.StatusCode)
	}

	var out suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrService, err)
	}
	if out.Suggestions == nil {
		out.Suggestions = []Suggestion{}
	}
	return out.Suggestions, nil
}
