package vaults

import (
	"context"
	"fmt"
	"strings"
)

// Service manages vault profiles.
type Service struct {
	Repo Repo
}

// Save normalizes and stores a vault profile.
func (s *Service) Save(ctx context.Context, vault Vault) (Vault, error) {
	if strings.TrimSpace(vault.ID) == "" {
		return Vault{}, fmt.Errorf("vault id is required")
	}
	vault.Interests = normalizeCategories(vault.Interests)
	vault.Dislikes = normalizeCategories(vault.Dislikes)
	vault.Vibes = normalizeCategories(vault.Vibes)
	vault.PrimaryLoveLanguage = normalizeCategory(vault.PrimaryLoveLanguage)
	vault.SecondaryLoveLanguage = normalizeCategory(vault.SecondaryLoveLanguage)
	if err := vault.Validate(); err != nil {
		return Vault{}, err
	}
	if err := s.Repo.Upsert(ctx, vault); err != nil {
		return Vault{}, fmt.Errorf("store vault: %w", err)
	}
	return s.Repo.GetByID(ctx, vault.ID)
}

// Get fetches a vault by id.
func (s *Service) Get(ctx context.Context, vaultID string) (Vault, error) {
	return s.Repo.GetByID(ctx, vaultID)
}

func normalizeCategories(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		normalized := normalizeCategory(item)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}
