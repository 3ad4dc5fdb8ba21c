package weights

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu   sync.RWMutex
	rows map[string]Weights
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[string]Weights)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, w Weights) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	w.UpdatedAt = time.Now().UTC()
	r.rows[w.UserID] = w
	return nil
}

func (r *MemoryRepo) GetByUserID(ctx context.Context, userID string) (Weights, error) {
	if err := ctx.Err(); err != nil {
		return Weights{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.rows[userID]
	if !ok {
		return Weights{}, ErrNotFound
	}
	return w, nil
}
