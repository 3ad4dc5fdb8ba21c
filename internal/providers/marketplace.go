package providers

import (
	"context"

	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

// Marketplace adapts a product marketplace API into gift candidates.
type Marketplace struct {
	client apiClient
}

// NewMarketplace constructs the marketplace adapter.
func NewMarketplace(baseURL, apiKey string) *Marketplace {
	return &Marketplace{client: newAPIClient(baseURL, apiKey)}
}

func (m *Marketplace) Name() string { return SourceMarketplace }

type marketplaceItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Currency    string   `json:"currency"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Vendor      string   `json:"vendor"`
	City        string   `json:"city"`
	Tags        []string `json:"tags"`
}

type marketplaceResponse struct {
	Items []marketplaceItem `json:"items"`
}

func (m *Marketplace) Search(ctx context.Context, filters recs.SearchFilters) ([]recs.Candidate, error) {
	var resp marketplaceResponse
	if err := m.client.get(ctx, "/v1/products/search", searchQuery(filters), &resp); err != nil {
		return nil, err
	}

	out := make([]recs.Candidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		metadata := map[string]string{}
		if len(item.Tags) > 0 {
			metadata["tags"] = joinTags(item.Tags)
		}
		out = append(out, recs.Candidate{
			ID:          SourceMarketplace + ":" + item.ID,
			Source:      SourceMarketplace,
			Type:        recs.TypeGift,
			Title:       item.Name,
			Description: item.Description,
			PriceCents:  item.PriceCents,
			Currency:    orCurrency(item.Currency, filters.Budget.Currency),
			URL:         item.URL,
			ImageURL:    item.ImageURL,
			Merchant:    item.Vendor,
			Location:    item.City,
			Metadata:    metadata,
		})
	}
	return out, nil
}

var _ recs.SourceProvider = (*Marketplace)(nil)
