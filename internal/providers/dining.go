package providers

import (
	"context"

	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

// Dining adapts a restaurant reservation API into date candidates.
type Dining struct {
	client apiClient
}

// NewDining constructs the dining adapter.
func NewDining(baseURL, apiKey string) *Dining {
	return &Dining{client: newAPIClient(baseURL, apiKey)}
}

func (d *Dining) Name() string { return SourceDining }

type diningItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	About          string `json:"about"`
	AvgPriceCents  int64  `json:"avg_price_cents"`
	Currency       string `json:"currency"`
	ReservationURL string `json:"reservation_url"`
	PhotoURL       string `json:"photo_url"`
	City           string `json:"city"`
	Cuisine        string `json:"cuisine"`
}

type diningResponse struct {
	Restaurants []diningItem `json:"restaurants"`
}

func (d *Dining) Search(ctx context.Context, filters recs.SearchFilters) ([]recs.Candidate, error) {
	var resp diningResponse
	if err := d.client.get(ctx, "/v1/restaurants/search", searchQuery(filters), &resp); err != nil {
		return nil, err
	}

	out := make([]recs.Candidate, 0, len(resp.Restaurants))
	for _, item := range resp.Restaurants {
		metadata := map[string]string{}
		if item.Cuisine != "" {
			metadata["cuisine"] = item.Cuisine
		}
		out = append(out, recs.Candidate{
			ID:          SourceDining + ":" + item.ID,
			Source:      SourceDining,
			Type:        recs.TypeDate,
			Title:       item.Name,
			Description: item.About,
			PriceCents:  item.AvgPriceCents,
			Currency:    orCurrency(item.Currency, filters.Budget.Currency),
			URL:         item.ReservationURL,
			ImageURL:    item.PhotoURL,
			Merchant:    item.Name,
			Location:    item.City,
			Metadata:    metadata,
		})
	}
	return out, nil
}

var _ recs.SourceProvider = (*Dining)(nil)
