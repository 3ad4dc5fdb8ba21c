package hints

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
)

const (
	retrieveLimit  = 10
	candidatePool  = 200
	scoreThreshold = 0.0
)

// Embedder turns free text into a vector, or reports the provider unavailable.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// RetrieveInput describes the context a hint query is built from.
type RetrieveInput struct {
	VaultID       string
	OccasionLabel string
	MilestoneName string
	MilestoneType string
	TopInterests  []string
}

// Retriever fetches hints related to an upcoming occasion. Similarity search
// first, chronological fallback second, empty list as the last resort.
type Retriever struct {
	Repo     Repo
	Embedder Embedder
}

// Retrieve returns up to 10 hints for the vault. It never returns an error:
// every failure path degrades to a smaller (possibly empty) result.
func (r *Retriever) Retrieve(ctx context.Context, input RetrieveInput) []Hint {
	query := buildQuery(input)

	if r.Embedder != nil && query != "" {
		vector, err := r.Embedder.Embed(ctx, query)
		if err == nil && len(vector) > 0 {
			ranked, searchErr := r.searchBySimilarity(ctx, input.VaultID, vector)
			if searchErr == nil {
				return ranked
			}
			telemetry.Error("hints.similarity_search_failed", map[string]any{
				"vault_id": input.VaultID,
				"error":    searchErr.Error(),
			})
		} else if err != nil {
			telemetry.Info("hints.embed_unavailable", map[string]any{
				"vault_id": input.VaultID,
				"error":    err.Error(),
			})
		}
	}

	metrics.IncHintFallback()
	recent, err := r.Repo.ListRecent(ctx, input.VaultID, retrieveLimit)
	if err != nil {
		telemetry.Error("hints.fallback_failed", map[string]any{
			"vault_id": input.VaultID,
			"error":    err.Error(),
		})
		return []Hint{}
	}
	for i := range recent {
		recent[i].SimilarityScore = 0
	}
	return recent
}

func (r *Retriever) searchBySimilarity(ctx context.Context, vaultID string, vector []float32) ([]Hint, error) {
	pool, err := r.Repo.ListEmbedded(ctx, vaultID, candidatePool)
	if err != nil {
		return nil, err
	}
	scored := make([]Hint, 0, len(pool))
	for _, h := range pool {
		score := cosineSimilarity(vector, h.Embedding)
		if score < scoreThreshold {
			continue
		}
		h.SimilarityScore = score
		scored = append(scored, h)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})
	if len(scored) > retrieveLimit {
		scored = scored[:retrieveLimit]
	}
	return scored, nil
}

func buildQuery(input RetrieveInput) string {
	parts := make([]string, 0, 4)
	if input.MilestoneName != "" {
		parts = append(parts, input.MilestoneName)
	}
	if input.MilestoneType != "" {
		parts = append(parts, input.MilestoneType)
	}
	if input.OccasionLabel != "" {
		parts = append(parts, input.OccasionLabel)
	}
	interests := input.TopInterests
	if len(interests) > 3 {
		interests = interests[:3]
	}
	parts = append(parts, interests...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
