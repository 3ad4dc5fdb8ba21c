package hints

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, hint Hint) error {
	var embedding any
	if len(hint.Embedding) > 0 {
		data, err := json.Marshal(hint.Embedding)
		if err != nil {
			return fmt.Errorf("marshal embedding: %w", err)
		}
		embedding = data
	}
	const query = `
INSERT INTO hints (id, vault_id, content, embedding, created_at)
VALUES ($1, $2, $3, $4, now())`
	_, err := r.DB.ExecContext(ctx, query, hint.ID, hint.VaultID, hint.Content, embedding)
	return err
}

func (r *PGRepo) ListRecent(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	const query = `
SELECT id, vault_id, content, embedding, created_at
FROM hints
WHERE vault_id = $1
ORDER BY created_at DESC
LIMIT $2`
	return r.list(ctx, query, vaultID, limit)
}

func (r *PGRepo) ListEmbedded(ctx context.Context, vaultID string, limit int) ([]Hint, error) {
	const query = `
SELECT id, vault_id, content, embedding, created_at
FROM hints
WHERE vault_id = $1 AND embedding IS NOT NULL
ORDER BY created_at DESC
LIMIT $2`
	return r.list(ctx, query, vaultID, limit)
}

func (r *PGRepo) list(ctx context.Context, query, vaultID string, limit int) ([]Hint, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.DB.QueryContext(ctx, query, vaultID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Hint
	for rows.Next() {
		var h Hint
		var embedding []byte
		if err := rows.Scan(&h.ID, &h.VaultID, &h.Content, &embedding, &h.CreatedAt); err != nil {
			return nil, err
		}
		if len(embedding) > 0 {
			if err := json.Unmarshal(embedding, &h.Embedding); err != nil {
				return nil, fmt.Errorf("unmarshal embedding: %w", err)
			}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
