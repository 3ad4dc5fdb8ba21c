package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative recommendation and embedding providers.
type Client interface {
	GenerateIdeas(ctx context.Context, input IdeasInput) ([]Idea, error)
	Embed(ctx context.Context, text string) ([]float32, error)
}

// IdeasInput captures the context the generative service turns into gift ideas.
type IdeasInput struct {
	PartnerName  string
	Interests    []string
	Vibes        []string
	LoveLanguage string
	Occasion     string
	Hints        []string
	BudgetMin    int64
	BudgetMax    int64
	Currency     string
	Count        int
}

// Idea is one generated recommendation before normalization into a candidate.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Merchant    string `json:"merchant,omitempty"`
	URL         string `json:"url,omitempty"`
	PriceCents  int64  `json:"priceCents"`
}

// ErrUnavailable indicates the provider could not be reached at all.
var ErrUnavailable = errors.New("llm provider unavailable")

// PlaceholderClient is a stub implementation for environments without a provider.
type PlaceholderClient struct{}

func (PlaceholderClient) GenerateIdeas(ctx context.Context, input IdeasInput) ([]Idea, error) {
	_ = ctx
	_ = input
	return nil, ErrUnavailable
}

func (PlaceholderClient) Embed(ctx context.Context, text string) ([]float32, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}
