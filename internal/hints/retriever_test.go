package hints

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	_ = ctx
	_ = text
	return s.vector, s.err
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, hint Hint) error { return errors.New("down") }
func (failingRepo) ListRecent(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	return nil, errors.New("down")
}
func (failingRepo) ListEmbedded(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	return nil, errors.New("down")
}

func seedRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seeds := []Hint{
		{ID: "h1", VaultID: "v1", Content: "mentioned wanting pottery classes", Embedding: []float32{1, 0, 0}, CreatedAt: base},
		{ID: "h2", VaultID: "v1", Content: "loves jazz bars downtown", Embedding: []float32{0, 1, 0}, CreatedAt: base.Add(time.Hour)},
		{ID: "h3", VaultID: "v1", Content: "no embedding yet", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, h := range seeds {
		if err := repo.Create(context.Background(), h); err != nil {
			t.Fatalf("seed hint: %v", err)
		}
	}
	return repo
}

func TestRetrieveRanksBySimilarity(t *testing.T) {
	repo := seedRepo(t)
	r := &Retriever{Repo: repo, Embedder: stubEmbedder{vector: []float32{0, 1, 0}}}

	got := r.Retrieve(context.Background(), RetrieveInput{
		VaultID:       "v1",
		OccasionLabel: "memorable",
		TopInterests:  []string{"music", "ceramics"},
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 embedded hints, got %d", len(got))
	}
	if got[0].ID != "h2" {
		t.Fatalf("expected most similar hint first, got %s", got[0].ID)
	}
	if got[0].SimilarityScore <= got[1].SimilarityScore {
		t.Fatalf("expected descending similarity, got %f then %f", got[0].SimilarityScore, got[1].SimilarityScore)
	}
}

func TestRetrieveFallsBackChronologically(t *testing.T) {
	repo := seedRepo(t)
	r := &Retriever{Repo: repo, Embedder: stubEmbedder{err: errors.New("provider unavailable")}}

	got := r.Retrieve(context.Background(), RetrieveInput{VaultID: "v1", OccasionLabel: "casual"})

	if len(got) != 3 {
		t.Fatalf("expected all 3 hints from fallback, got %d", len(got))
	}
	if got[0].ID != "h3" {
		t.Fatalf("expected newest hint first, got %s", got[0].ID)
	}
	for _, h := range got {
		if h.SimilarityScore != 0 {
			t.Fatalf("fallback hints must carry similarity 0, got %f", h.SimilarityScore)
		}
	}
}

func TestRetrieveNeverErrors(t *testing.T) {
	r := &Retriever{Repo: failingRepo{}, Embedder: stubEmbedder{err: errors.New("down")}}
	got := r.Retrieve(context.Background(), RetrieveInput{VaultID: "v1"})
	if len(got) != 0 {
		t.Fatalf("expected empty result when everything fails, got %d", len(got))
	}
}

func TestBuildQueryConcatenatesContext(t *testing.T) {
	query := buildQuery(RetrieveInput{
		MilestoneName: "six month anniversary",
		MilestoneType: "anniversary",
		OccasionLabel: "memorable",
		TopInterests:  []string{"hiking", "wine", "photography", "chess"},
	})
	want := "six month anniversary anniversary memorable hiking wine photography"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
}
