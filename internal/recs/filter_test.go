package recs

import "testing"

func TestFilterRemovesDislikedCategories(t *testing.T) {
	candidates := []Candidate{
		{ID: "1", Title: "winery tour and tasting"},
		{ID: "2", Title: "pottery class for two"},
		{ID: "3", Title: "champagne gift box"},
	}

	got := Filter(candidates, []string{"art"}, []string{"wine"}, NewKeywordScorer())
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only the pottery candidate to survive, got %+v", got)
	}
}

func TestFilterScoresByInterestAlignment(t *testing.T) {
	candidates := []Candidate{
		{ID: "none", Title: "stainless steel water bottle"},
		{ID: "both", Title: "sunset kayak trip with live jazz", Description: "hiking trail views"},
		{ID: "one", Title: "jazz vinyl pressing"},
	}

	got := Filter(candidates, []string{"music", "outdoors"}, nil, NewKeywordScorer())
	if len(got) != 3 {
		t.Fatalf("expected all candidates to survive, got %d", len(got))
	}
	if got[0].ID != "both" || got[1].ID != "one" || got[2].ID != "none" {
		t.Fatalf("expected interest-score ordering both,one,none; got %s,%s,%s", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].InterestScore != 1.0 {
		t.Fatalf("expected full match score 1.0, got %v", got[0].InterestScore)
	}
	if got[1].InterestScore != 0.5 {
		t.Fatalf("expected half match score 0.5, got %v", got[1].InterestScore)
	}
	if got[2].InterestScore != 0.0 {
		t.Fatalf("expected zero-match candidate kept with score 0.0, got %v", got[2].InterestScore)
	}
}

func TestFilterCapsWorkingSet(t *testing.T) {
	candidates := candidateList(25, "marketplace")
	got := Filter(candidates, nil, nil, NewKeywordScorer())
	if len(got) != maxFiltered {
		t.Fatalf("expected working set capped at %d, got %d", maxFiltered, len(got))
	}
}

func TestFilterStableOrderOnTies(t *testing.T) {
	candidates := candidateList(5, "events")
	got := Filter(candidates, []string{"travel"}, nil, NewKeywordScorer())
	for i, c := range got {
		if c.ID != candidates[i].ID {
			t.Fatalf("expected stable order on score ties, got %s at position %d", c.ID, i)
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, []string{"music"}, []string{"wine"}, NewKeywordScorer())
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
