package providers

import (
	"context"
	"strings"

	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

// Events adapts a local events/ticketing API into experience candidates.
type Events struct {
	client apiClient
}

// NewEvents constructs the events adapter.
func NewEvents(baseURL, apiKey string) *Events {
	return &Events{client: newAPIClient(baseURL, apiKey)}
}

func (e *Events) Name() string { return SourceEvents }

type eventItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	PriceCents   int64  `json:"price_cents"`
	Currency     string `json:"currency"`
	TicketURL    string `json:"ticket_url"`
	ImageURL     string `json:"image_url"`
	Venue        string `json:"venue"`
	City         string `json:"city"`
	Category     string `json:"category"`
	StartsAtUnix int64  `json:"starts_at"`
}

type eventsResponse struct {
	Events []eventItem `json:"events"`
}

func (e *Events) Search(ctx context.Context, filters recs.SearchFilters) ([]recs.Candidate, error) {
	var resp eventsResponse
	if err := e.client.get(ctx, "/v1/events/search", searchQuery(filters), &resp); err != nil {
		return nil, err
	}

	out := make([]recs.Candidate, 0, len(resp.Events))
	for _, item := range resp.Events {
		metadata := map[string]string{}
		if item.Category != "" {
			metadata["category"] = item.Category
		}
		out = append(out, recs.Candidate{
			ID:          SourceEvents + ":" + item.ID,
			Source:      SourceEvents,
			Type:        recs.TypeExperience,
			Title:       item.Title,
			Description: item.Summary,
			PriceCents:  item.PriceCents,
			Currency:    orCurrency(item.Currency, filters.Budget.Currency),
			URL:         item.TicketURL,
			ImageURL:    item.ImageURL,
			Merchant:    item.Venue,
			Location:    item.City,
			Metadata:    metadata,
		})
	}
	return out, nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, " ")
}

func orCurrency(value, def string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	if strings.TrimSpace(def) != "" {
		return def
	}
	return "USD"
}

var _ recs.SourceProvider = (*Events)(nil)
