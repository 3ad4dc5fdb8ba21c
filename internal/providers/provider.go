// Package providers contains the source adapters that feed candidate
// aggregation. Each adapter normalizes its upstream API's shape into a
// recs.Candidate before it ever reaches the pipeline.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

// Source names, also the keys of the priority table.
const (
	SourceCurated     = "curated"
	SourceMarketplace = "marketplace"
	SourceDining      = "dining"
	SourceEvents      = "events"
)

// DefaultPriority decides which duplicate survives deduplication; higher
// wins. The curated (generative) source outranks everything.
func DefaultPriority() map[string]int {
	return map[string]int{
		SourceCurated:     40,
		SourceMarketplace: 30,
		SourceDining:      20,
		SourceEvents:      10,
	}
}

// apiClient is the shared HTTP plumbing of the REST-backed adapters.
type apiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newAPIClient(baseURL, apiKey string) apiClient {
	return apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c apiClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("provider base URL not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// searchQuery translates aggregation filters into common query params.
func searchQuery(filters recs.SearchFilters) url.Values {
	query := url.Values{}
	if len(filters.Interests) > 0 {
		query.Set("interests", strings.Join(filters.Interests, ","))
	}
	if len(filters.Vibes) > 0 {
		query.Set("vibes", strings.Join(filters.Vibes, ","))
	}
	if filters.Location != "" {
		query.Set("location", filters.Location)
	}
	if filters.Budget.Max > 0 {
		query.Set("price_min", strconv.FormatInt(filters.Budget.Min, 10))
		query.Set("price_max", strconv.FormatInt(filters.Budget.Max, 10))
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	query.Set("limit", strconv.Itoa(limit))
	return query
}
