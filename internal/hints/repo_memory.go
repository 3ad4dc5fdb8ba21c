package hints

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	hints map[string][]Hint
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{hints: make(map[string][]Hint)}
}

func (r *MemoryRepo) Create(ctx context.Context, hint Hint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if hint.CreatedAt.IsZero() {
		hint.CreatedAt = time.Now().UTC()
	}
	r.hints[hint.VaultID] = append(r.hints[hint.VaultID], hint)
	return nil
}

func (r *MemoryRepo) ListRecent(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Hint(nil), r.hints[vaultID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) ListEmbedded(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	all, err := r.ListRecent(ctx, vaultID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]Hint, 0, len(all))
	for _, h := range all {
		if len(h.Embedding) > 0 {
			out = append(out, h)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
