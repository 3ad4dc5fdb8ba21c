package hints

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
)

// Service stores hints, embedding them on write when a provider is available.
type Service struct {
	Repo     Repo
	Embedder Embedder
}

// Add stores a new hint. Embedding is best effort: an unavailable provider
// leaves the hint searchable through the chronological fallback only.
func (s *Service) Add(ctx context.Context, vaultID, content string) (Hint, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Hint{}, fmt.Errorf("hint content is required")
	}

	hint := Hint{
		ID:      uuid.NewString(),
		VaultID: vaultID,
		Content: content,
	}

	if s.Embedder != nil {
		vector, err := s.Embedder.Embed(ctx, content)
		if err != nil {
			telemetry.Info("hints.embed_on_write_failed", map[string]any{
				"vault_id": vaultID,
				"error":    err.Error(),
			})
		} else {
			hint.Embedding = vector
		}
	}

	if err := s.Repo.Create(ctx, hint); err != nil {
		return Hint{}, fmt.Errorf("store hint: %w", err)
	}
	return hint, nil
}

// Recent lists the newest hints for a vault.
func (s *Service) Recent(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	return s.Repo.ListRecent(ctx, vaultID, limit)
}
