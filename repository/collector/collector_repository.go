package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minhqn/price-intel/model"
)

// CollectorRepository talks to the crawler backend that scrapes the retail
// sites. The backend is an opaque collaborator: we only depend on its
// request/response shape.
type CollectorRepository interface {
	Search(ctx context.Context, keyword string, numProducts int) ([]model.RawListing, error)
}

type httpCollector struct {
	baseURL    string
	httpClient *http.Client
}

type searchRequest struct {
	Keyword     string `json:"keyword"`
	NumProducts int    `json:"num_products"`
}

type searchResponse struct {
	Keyword string             `json:"keyword"`
	Results []model.RawListing `json:"results"`
}

func NewCollectorRepository(baseURL string, timeout time.Duration) CollectorRepository {
	return &httpCollector{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search posts the keyword to the collector and decodes the scraped
// listings. Listings come back without IDs; the application layer assigns
// them on ingestion. Any transport failure or non-2xx status is returned
// as an error so the caller can distinguish "backend down" from "no results".
func (c *httpCollector) Search(ctx context.Context, keyword string, numProducts int) ([]model.RawListing, error) {
	body, err := json.Marshal(searchRequest{
		Keyword:     keyword,
		NumProducts: numProducts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("collector request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read collector response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("collector returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var decoded searchResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse collector response: %w", err)
	}

	return decoded.Results, nil
}
