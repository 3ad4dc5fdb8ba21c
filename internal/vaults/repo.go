package vaults

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "vault not found" }

// Repo reads and writes vault profiles.
type Repo interface {
	Upsert(ctx context.Context, vault Vault) error
	GetByID(ctx context.Context, vaultID string) (Vault, error)
}
