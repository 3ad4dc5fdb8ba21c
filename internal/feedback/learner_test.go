package feedback

import (
	"context"
	"testing"

	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

func intPtr(v int) *int { return &v }

func ratedEntry(userID, title, description string, rating int) Entry {
	return Entry{
		UserID:      userID,
		Action:      ActionRated,
		Rating:      intPtr(rating),
		RecType:     "date",
		Title:       title,
		Description: description,
	}
}

func TestLearnerSkipsUsersBelowMinimumEntries(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := NewMemoryRepo()
	weightsRepo := weights.NewMemoryRepo()
	learner := NewLearner(feedbackRepo, weightsRepo)

	for i := 0; i < 2; i++ {
		if err := feedbackRepo.Create(ctx, ratedEntry("user-1", "candlelit dinner", "an intimate date night", 5)); err != nil {
			t.Fatalf("create feedback: %v", err)
		}
	}

	updated, err := learner.RunAll(ctx)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if updated != 0 {
		t.Fatalf("expected 0 users updated, got %d", updated)
	}

	if _, err := weightsRepo.GetByUserID(ctx, "user-1"); err != weights.ErrNotFound {
		t.Fatalf("expected no stored weights, got err=%v", err)
	}
	// Missing row means every multiplier reads as 1.0.
	w := weights.Default("user-1")
	if got := w.Vibe("romantic"); got != 1.0 {
		t.Fatalf("expected default weight 1.0, got %v", got)
	}
}

func TestLearnerBoostsConsistentlyLovedVibe(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := NewMemoryRepo()
	weightsRepo := weights.NewMemoryRepo()
	learner := NewLearner(feedbackRepo, weightsRepo)

	titles := []string{"candlelit rooftop dinner", "sunset sail for two", "intimate wine pairing"}
	for _, title := range titles {
		if err := feedbackRepo.Create(ctx, ratedEntry("user-1", title, "a romantic evening", 5)); err != nil {
			t.Fatalf("create feedback: %v", err)
		}
	}

	updated, err := learner.RunAll(ctx)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected 1 user updated, got %d", updated)
	}

	w, err := weightsRepo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	got := w.Vibe("romantic")
	if got <= 1.0 || got > weights.MaxWeight {
		t.Fatalf("expected romantic weight in (1.0, %v], got %v", weights.MaxWeight, got)
	}
	// Three ratings of 5 map to signal 1.0 each: weight = 1 + 0.3*1.0.
	if got != 1.3 {
		t.Fatalf("expected romantic weight 1.3, got %v", got)
	}
}

func TestLearnerPenalizesRefreshedRecommendations(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := NewMemoryRepo()
	weightsRepo := weights.NewMemoryRepo()
	learner := NewLearner(feedbackRepo, weightsRepo)

	for i := 0; i < 3; i++ {
		entry := Entry{
			UserID:      "user-2",
			Action:      ActionRefreshed,
			RecType:     "gift",
			Title:       "espresso machine",
			Description: "a barista grade coffee brewer",
		}
		if err := feedbackRepo.Create(ctx, entry); err != nil {
			t.Fatalf("create feedback: %v", err)
		}
	}

	if _, err := learner.RunAll(ctx); err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	w, err := weightsRepo.GetByUserID(ctx, "user-2")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got := w.Interest("coffee"); got >= 1.0 {
		t.Fatalf("expected coffee weight below 1.0, got %v", got)
	}
	if got := w.Type("gift"); got >= 1.0 {
		t.Fatalf("expected gift type weight below 1.0, got %v", got)
	}
}

func TestLearnerIgnoresSparseGroups(t *testing.T) {
	learner := NewLearner(NewMemoryRepo(), weights.NewMemoryRepo())

	entries := []Entry{
		ratedEntry("user-3", "candlelit dinner", "romantic evening", 5),
		ratedEntry("user-3", "candlelit picnic", "sunset views", 5),
		ratedEntry("user-3", "pottery class", "handmade studio session", 4),
	}
	w := learner.Compute("user-3", entries)

	// Only two romantic samples: below the group floor, so no entry is stored
	// and the lookup falls back to 1.0.
	if _, ok := w.Vibes["romantic"]; ok {
		t.Fatalf("expected no stored romantic weight, got %v", w.Vibes["romantic"])
	}
	if got := w.Vibe("romantic"); got != 1.0 {
		t.Fatalf("expected romantic weight 1.0, got %v", got)
	}
}

func TestLearnerIsIdempotent(t *testing.T) {
	ctx := context.Background()
	feedbackRepo := NewMemoryRepo()
	weightsRepo := weights.NewMemoryRepo()
	learner := NewLearner(feedbackRepo, weightsRepo)

	for i := 0; i < 3; i++ {
		if err := feedbackRepo.Create(ctx, ratedEntry("user-4", "candlelit dinner", "romantic evening", 5)); err != nil {
			t.Fatalf("create feedback: %v", err)
		}
	}

	if _, err := learner.RunAll(ctx); err != nil {
		t.Fatalf("first RunAll: %v", err)
	}
	first, err := weightsRepo.GetByUserID(ctx, "user-4")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}

	if _, err := learner.RunAll(ctx); err != nil {
		t.Fatalf("second RunAll: %v", err)
	}
	second, err := weightsRepo.GetByUserID(ctx, "user-4")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}

	if first.Vibe("romantic") != second.Vibe("romantic") {
		t.Fatalf("expected identical weights across runs, got %v then %v",
			first.Vibe("romantic"), second.Vibe("romantic"))
	}
}

func TestSignalMapping(t *testing.T) {
	tests := []struct {
		name   string
		entry  Entry
		want   float64
		wantOK bool
	}{
		{"rated 5", Entry{Action: ActionRated, Rating: intPtr(5)}, 1.0, true},
		{"rated 3", Entry{Action: ActionRated, Rating: intPtr(3)}, 0.0, true},
		{"rated 1", Entry{Action: ActionRated, Rating: intPtr(1)}, -1.0, true},
		{"purchased", Entry{Action: ActionPurchased}, 1.0, true},
		{"refreshed", Entry{Action: ActionRefreshed}, -0.3, true},
		{"unknown", Entry{Action: "viewed"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.entry.Signal()
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Signal() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
