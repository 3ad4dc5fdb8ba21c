package hints

import "context"

// Repo stores hints per vault.
type Repo interface {
	Create(ctx context.Context, hint Hint) error
	// ListRecent returns up to limit hints for the vault, newest first.
	ListRecent(ctx context.Context, vaultID string, limit int) ([]Hint, error)
	// ListEmbedded returns hints carrying an embedding, newest first.
	ListEmbedded(ctx context.Context, vaultID string, limit int) ([]Hint, error)
}
