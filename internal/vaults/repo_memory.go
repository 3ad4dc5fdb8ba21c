package vaults

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	vaults map[string]Vault
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{vaults: make(map[string]Vault)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, vault Vault) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := vault.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.vaults[vault.ID]
	now := time.Now().UTC()
	if !ok {
		vault.CreatedAt = now
	} else {
		vault.CreatedAt = existing.CreatedAt
	}
	vault.UpdatedAt = now
	r.vaults[vault.ID] = vault
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, vaultID string) (Vault, error) {
	if err := ctx.Err(); err != nil {
		return Vault{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	vault, ok := r.vaults[vaultID]
	if !ok {
		return Vault{}, ErrNotFound
	}
	return vault, nil
}
