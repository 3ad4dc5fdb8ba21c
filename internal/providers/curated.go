package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ronniejay22/Knot-APP-sub000/internal/llm"
	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

// Curated is the generative recommendation source: it asks the LLM for a
// small mix of purchasable options and pure ideas tailored to the vault.
type Curated struct {
	Client llm.Client
	// Count is how many ideas to request per search; defaults to 6.
	Count int
}

// NewCurated constructs the curated adapter.
func NewCurated(client llm.Client) *Curated {
	return &Curated{Client: client}
}

func (c *Curated) Name() string { return SourceCurated }

func (c *Curated) Search(ctx context.Context, filters recs.SearchFilters) ([]recs.Candidate, error) {
	if c.Client == nil {
		return nil, llm.ErrUnavailable
	}
	count := c.Count
	if count <= 0 {
		count = 6
	}

	ideas, err := c.Client.GenerateIdeas(ctx, llm.IdeasInput{
		PartnerName:  filters.PartnerName,
		Interests:    filters.Interests,
		Vibes:        filters.Vibes,
		LoveLanguage: filters.LoveLanguage,
		Occasion:     filters.Occasion,
		Hints:        filters.Hints,
		BudgetMin:    filters.Budget.Min,
		BudgetMax:    filters.Budget.Max,
		Currency:     filters.Budget.Currency,
		Count:        count,
	})
	if err != nil {
		return nil, fmt.Errorf("generate ideas: %w", err)
	}

	out := make([]recs.Candidate, 0, len(ideas))
	for _, idea := range ideas {
		if strings.TrimSpace(idea.Title) == "" {
			continue
		}
		out = append(out, recs.Candidate{
			ID:          SourceCurated + ":" + uuid.NewString(),
			Source:      SourceCurated,
			Type:        normalizeIdeaType(idea.Type),
			Title:       strings.TrimSpace(idea.Title),
			Description: strings.TrimSpace(idea.Description),
			PriceCents:  idea.PriceCents,
			Currency:    orCurrency("", filters.Budget.Currency),
			URL:         strings.TrimSpace(idea.URL),
			Merchant:    strings.TrimSpace(idea.Merchant),
			Location:    filters.Location,
		})
	}
	return out, nil
}

func normalizeIdeaType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case recs.TypeGift:
		return recs.TypeGift
	case recs.TypeExperience:
		return recs.TypeExperience
	case recs.TypeDate:
		return recs.TypeDate
	default:
		return recs.TypeIdea
	}
}

var _ recs.SourceProvider = (*Curated)(nil)
