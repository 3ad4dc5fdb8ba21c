package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ronniejay22/Knot-APP-sub000/internal/llm"
	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
)

func jsonServer(t *testing.T, wantPath string, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("unexpected path %s, want %s", r.URL.Path, wantPath)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func testFilters() recs.SearchFilters {
	return recs.SearchFilters{
		Interests: []string{"music"},
		Vibes:     []string{"romantic"},
		Location:  "Portland",
		Budget:    recs.Budget{Min: 1000, Max: 9000, Currency: "USD"},
		Limit:     20,
	}
}

func TestMarketplaceNormalizesProducts(t *testing.T) {
	srv := jsonServer(t, "/v1/products/search", `{
		"items": [{
			"id": "p1",
			"name": "vinyl press kit",
			"description": "custom record",
			"price_cents": 4500,
			"currency": "USD",
			"url": "https://shop.example/p1",
			"vendor": "Spin Shop",
			"city": "Portland",
			"tags": ["music", "vinyl"]
		}]
	}`)
	defer srv.Close()

	m := NewMarketplace(srv.URL, "test-key")
	got, err := m.Search(context.Background(), testFilters())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.ID != "marketplace:p1" || c.Source != SourceMarketplace || c.Type != recs.TypeGift {
		t.Fatalf("unexpected identity fields: %+v", c)
	}
	if c.Merchant != "Spin Shop" || c.PriceCents != 4500 {
		t.Fatalf("unexpected merchant/price: %+v", c)
	}
	if c.Metadata["tags"] != "music vinyl" {
		t.Fatalf("expected tags folded into metadata, got %q", c.Metadata["tags"])
	}
}

func TestEventsNormalizesExperiences(t *testing.T) {
	srv := jsonServer(t, "/v1/events/search", `{
		"events": [{
			"id": "e1",
			"title": "rooftop jazz night",
			"summary": "live quartet at sunset",
			"price_cents": 6000,
			"ticket_url": "https://tickets.example/e1",
			"venue": "Blue Note",
			"city": "Portland",
			"category": "music"
		}]
	}`)
	defer srv.Close()

	e := NewEvents(srv.URL, "test-key")
	got, err := e.Search(context.Background(), testFilters())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.ID != "events:e1" || c.Type != recs.TypeExperience {
		t.Fatalf("unexpected identity fields: %+v", c)
	}
	if c.Merchant != "Blue Note" || c.Metadata["category"] != "music" {
		t.Fatalf("unexpected merchant/metadata: %+v", c)
	}
	// Missing upstream currency falls back to the budget's.
	if c.Currency != "USD" {
		t.Fatalf("expected budget currency fallback, got %q", c.Currency)
	}
}

func TestDiningNormalizesRestaurants(t *testing.T) {
	srv := jsonServer(t, "/v1/restaurants/search", `{
		"restaurants": [{
			"id": "r1",
			"name": "Vin Bar",
			"about": "candlelit small plates",
			"avg_price_cents": 7000,
			"reservation_url": "https://book.example/r1",
			"city": "Portland",
			"cuisine": "french"
		}]
	}`)
	defer srv.Close()

	d := NewDining(srv.URL, "test-key")
	got, err := d.Search(context.Background(), testFilters())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	c := got[0]
	if c.ID != "dining:r1" || c.Type != recs.TypeDate {
		t.Fatalf("unexpected identity fields: %+v", c)
	}
	if c.Merchant != "Vin Bar" {
		t.Fatalf("expected restaurant name as merchant, got %q", c.Merchant)
	}
}

func TestProviderSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewMarketplace(srv.URL, "test-key")
	if _, err := m.Search(context.Background(), testFilters()); err == nil {
		t.Fatal("expected error on upstream 502")
	}
}

func TestProviderUnconfiguredBaseURL(t *testing.T) {
	m := NewMarketplace("", "")
	if _, err := m.Search(context.Background(), testFilters()); err == nil {
		t.Fatal("expected error when base URL is unset")
	}
}

type stubLLM struct {
	ideas []llm.Idea
	err   error
	input llm.IdeasInput
}

func (s *stubLLM) GenerateIdeas(_ context.Context, input llm.IdeasInput) ([]llm.Idea, error) {
	s.input = input
	return s.ideas, s.err
}

func (s *stubLLM) Embed(context.Context, string) ([]float32, error) {
	return nil, llm.ErrUnavailable
}

func TestCuratedNormalizesIdeas(t *testing.T) {
	stub := &stubLLM{ideas: []llm.Idea{
		{Title: "write a love letter", Description: "one page, handwritten", Type: "idea"},
		{Title: "sunset picnic", Description: "at the bluff", Type: "date", PriceCents: 2000},
		{Title: "  ", Description: "blank title dropped"},
		{Title: "mystery box", Type: "surprise"},
	}}
	c := NewCurated(stub)

	filters := testFilters()
	filters.Occasion = "anniversary"
	filters.Hints = []string{"mentioned the coast"}
	got, err := c.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected blank-title idea dropped, got %d candidates", len(got))
	}
	if got[0].Type != recs.TypeIdea || got[1].Type != recs.TypeDate {
		t.Fatalf("unexpected types: %s, %s", got[0].Type, got[1].Type)
	}
	// Unknown generated types normalize to idea.
	if got[2].Type != recs.TypeIdea {
		t.Fatalf("expected unknown type normalized to idea, got %s", got[2].Type)
	}
	if stub.input.Occasion != "anniversary" || len(stub.input.Hints) != 1 {
		t.Fatalf("expected occasion and hints forwarded, got %+v", stub.input)
	}
	for _, cand := range got {
		if cand.Source != SourceCurated || cand.ID == "" {
			t.Fatalf("unexpected candidate identity: %+v", cand)
		}
	}
}

func TestCuratedProviderError(t *testing.T) {
	c := NewCurated(&stubLLM{err: llm.ErrUnavailable})
	if _, err := c.Search(context.Background(), testFilters()); err == nil {
		t.Fatal("expected error when the generative service is down")
	}
}

func TestDefaultPriorityOrdersCuratedFirst(t *testing.T) {
	p := DefaultPriority()
	if p[SourceCurated] <= p[SourceMarketplace] || p[SourceMarketplace] <= p[SourceDining] || p[SourceDining] <= p[SourceEvents] {
		t.Fatalf("unexpected priority ordering: %v", p)
	}
}
