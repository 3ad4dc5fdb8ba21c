package weights

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

func (r *PGRepo) Upsert(ctx context.Context, w Weights) error {
	interests, err := json.Marshal(mapOrEmpty(w.Interests))
	if err != nil {
		return fmt.Errorf("marshal interests: %w", err)
	}
	vibes, err := json.Marshal(mapOrEmpty(w.Vibes))
	if err != nil {
		return fmt.Errorf("marshal vibes: %w", err)
	}
	types, err := json.Marshal(mapOrEmpty(w.Types))
	if err != nil {
		return fmt.Errorf("marshal types: %w", err)
	}
	languages, err := json.Marshal(mapOrEmpty(w.LoveLanguages))
	if err != nil {
		return fmt.Errorf("marshal love languages: %w", err)
	}

	const query = `
INSERT INTO user_preference_weights (user_id, interest_weights, vibe_weights, type_weights, love_language_weights, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (user_id) DO UPDATE SET
  interest_weights = EXCLUDED.interest_weights,
  vibe_weights = EXCLUDED.vibe_weights,
  type_weights = EXCLUDED.type_weights,
  love_language_weights = EXCLUDED.love_language_weights,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, w.UserID, interests, vibes, types, languages)
	return err
}

func (r *PGRepo) GetByUserID(ctx context.Context, userID string) (Weights, error) {
	const query = `
SELECT user_id, interest_weights, vibe_weights, type_weights, love_language_weights, updated_at
FROM user_preference_weights
WHERE user_id = $1
LIMIT 1`
	var w Weights
	var interests, vibes, types, languages []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&w.UserID,
		&interests,
		&vibes,
		&types,
		&languages,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Weights{}, ErrNotFound
		}
		return Weights{}, err
	}
	if err := json.Unmarshal(interests, &w.Interests); err != nil {
		return Weights{}, fmt.Errorf("unmarshal interests: %w", err)
	}
	if err := json.Unmarshal(vibes, &w.Vibes); err != nil {
		return Weights{}, fmt.Errorf("unmarshal vibes: %w", err)
	}
	if err := json.Unmarshal(types, &w.Types); err != nil {
		return Weights{}, fmt.Errorf("unmarshal types: %w", err)
	}
	if err := json.Unmarshal(languages, &w.LoveLanguages); err != nil {
		return Weights{}, fmt.Errorf("unmarshal love languages: %w", err)
	}
	return w, nil
}

func mapOrEmpty(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
