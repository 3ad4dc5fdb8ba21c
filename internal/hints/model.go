package hints

import "time"

// Hint is a free-text note about the partner, immutable once retrieved.
// SimilarityScore is 0.0 when no semantic ranking was available.
type Hint struct {
	ID              string    `json:"id"`
	VaultID         string    `json:"vaultId"`
	Content         string    `json:"content"`
	SimilarityScore float64   `json:"similarityScore"`
	Embedding       []float32 `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}
