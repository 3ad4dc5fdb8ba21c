package vaults

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, vault Vault) error {
	if err := vault.Validate(); err != nil {
		return err
	}
	interests, err := json.Marshal(stringsOrEmpty(vault.Interests))
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	dislikes, err := json.Marshal(stringsOrEmpty(vault.Dislikes))
	if err != nil {
		return fmt.Errorf("marshal dislikes: %w", err)
	}
	vibes, err := json.Marshal(stringsOrEmpty(vault.Vibes))
	if err != nil {
		return fmt.Errorf("marshal vibes: %w", err)
	}
	budgets, err := json.Marshal(budgetsOrEmpty(vault.Budgets))
	if err != nil {
		return fmt.Errorf("marshal budgets: %w", err)
	}

	const query = `
INSERT INTO vaults (id, user_id, partner_name, interests, dislikes, vibes, primary_love_language, secondary_love_language, budgets, location, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
ON CONFLICT (id) DO UPDATE SET
  partner_name = EXCLUDED.partner_name,
  interests = EXCLUDED.interests,
  dislikes = EXCLUDED.dislikes,
  vibes = EXCLUDED.vibes,
  primary_love_language = EXCLUDED.primary_love_language,
  secondary_love_language = EXCLUDED.secondary_love_language,
  budgets = EXCLUDED.budgets,
  location = EXCLUDED.location,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query,
		vault.ID,
		vault.UserID,
		vault.PartnerName,
		interests,
		dislikes,
		vibes,
		vault.PrimaryLoveLanguage,
		vault.SecondaryLoveLanguage,
		budgets,
		vault.Location,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, vaultID string) (Vault, error) {
	const query = `
SELECT id, user_id, partner_name, interests, dislikes, vibes, primary_love_language, secondary_love_language, budgets, location, created_at, updated_at
FROM vaults
WHERE id = $1
LIMIT 1`
	var vault Vault
	var interests, dislikes, vibes, budgets []byte
	err := r.DB.QueryRowContext(ctx, query, vaultID).Scan(
		&vault.ID,
		&vault.UserID,
		&vault.PartnerName,
		&interests,
		&dislikes,
		&vibes,
		&vault.PrimaryLoveLanguage,
		&vault.SecondaryLoveLanguage,
		&budgets,
		&vault.Location,
		&vault.CreatedAt,
		&vault.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vault{}, ErrNotFound
		}
		return Vault{}, err
	}
	if err := json.Unmarshal(interests, &vault.Interests); err != nil {
		return Vault{}, fmt.Errorf("unmarshal interests: %w", err)
	}
	if err := json.Unmarshal(dislikes, &vault.Dislikes); err != nil {
		return Vault{}, fmt.Errorf("unmarshal dislikes: %w", err)
	}
	if err := json.Unmarshal(vibes, &vault.Vibes); err != nil {
		return Vault{}, fmt.Errorf("unmarshal vibes: %w", err)
	}
	if err := json.Unmarshal(budgets, &vault.Budgets); err != nil {
		return Vault{}, fmt.Errorf("unmarshal budgets: %w", err)
	}
	return vault, nil
}

func stringsOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func budgetsOrEmpty(budgets map[string]BudgetRange) map[string]BudgetRange {
	if budgets == nil {
		return map[string]BudgetRange{}
	}
	return budgets
}
