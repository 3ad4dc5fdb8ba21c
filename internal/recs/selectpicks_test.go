package recs

import "testing"

func TestSelectDiverseReturnsAtMostThree(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000, Currency: "USD"}
	ranked := candidateList(6, "marketplace")
	for i := range ranked {
		ranked[i].FinalScore = float64(6 - i)
	}

	got := SelectDiverse(ranked, budget)
	if len(got) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(got))
	}
}

func TestSelectDiverseFewerCandidatesThanTarget(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000}
	got := SelectDiverse(candidateList(2, "events"), budget)
	if len(got) != 2 {
		t.Fatalf("expected 2 picks from 2 candidates, got %d", len(got))
	}
	if got := SelectDiverse(nil, budget); len(got) != 0 {
		t.Fatalf("expected no picks from empty input, got %d", len(got))
	}
}

func TestSelectDiverseSeedsWithTopScore(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000}
	ranked := []Candidate{
		{ID: "top", FinalScore: 3.0, Type: TypeGift, PriceCents: 1000},
		{ID: "second", FinalScore: 2.0, Type: TypeGift, PriceCents: 1000},
	}

	got := SelectDiverse(ranked, budget)
	if got[0].ID != "top" {
		t.Fatalf("expected highest final score seeded first, got %s", got[0].ID)
	}
}

func TestSelectDiversePrefersUnrepresentedDimensions(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000}
	ranked := []Candidate{
		{ID: "seed", FinalScore: 3.0, Type: TypeGift, PriceCents: 500, Merchant: "alpha"},
		{ID: "clone", FinalScore: 2.9, Type: TypeGift, PriceCents: 600, Merchant: "alpha"},
		{ID: "fresh", FinalScore: 2.0, Type: TypeDate, PriceCents: 8000, Merchant: "beta"},
		{ID: "mid", FinalScore: 1.5, Type: TypeExperience, PriceCents: 4000, Merchant: "gamma"},
	}

	got := SelectDiverse(ranked, budget)
	if len(got) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(got))
	}
	if got[1].ID != "fresh" {
		t.Fatalf("expected the fully distinct candidate picked second, got %s", got[1].ID)
	}
	if got[2].ID != "mid" {
		t.Fatalf("expected the remaining distinct candidate third, got %s", got[2].ID)
	}

	merchants := map[string]bool{}
	for _, c := range got {
		merchants[c.Merchant] = true
	}
	if len(merchants) < 2 {
		t.Fatalf("expected at least 2 distinct merchants, got %v", merchants)
	}
}

func TestSelectDiverseTieBreaksByRank(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000}
	// Both followers add the same diversity; the earlier-ranked one must win.
	ranked := []Candidate{
		{ID: "seed", FinalScore: 3.0, Type: TypeGift, PriceCents: 500, Merchant: "alpha"},
		{ID: "earlier", FinalScore: 2.0, Type: TypeDate, PriceCents: 8000, Merchant: "beta"},
		{ID: "later", FinalScore: 2.0, Type: TypeDate, PriceCents: 8500, Merchant: "delta"},
	}

	got := SelectDiverse(ranked, budget)
	if got[1].ID != "earlier" {
		t.Fatalf("expected rank to break the diversity tie, got %s", got[1].ID)
	}
}

func TestPriceTierSplitsBudgetIntoThirds(t *testing.T) {
	budget := Budget{Min: 0, Max: 9000}
	tests := []struct {
		price int64
		want  string
	}{
		{0, "low"},
		{2999, "low"},
		{3000, "mid"},
		{5999, "mid"},
		{6000, "high"},
		{20000, "high"},
	}
	for _, tt := range tests {
		if got := PriceTier(tt.price, budget); got != tt.want {
			t.Fatalf("PriceTier(%d) = %s, want %s", tt.price, got, tt.want)
		}
	}
}

func TestPriceTierDegenerateBudget(t *testing.T) {
	if got := PriceTier(1000, Budget{Min: 5000, Max: 5000}); got != "mid" {
		t.Fatalf("expected degenerate budget to classify as mid, got %s", got)
	}
}
