package feedback

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	const query = `
INSERT INTO recommendation_feedback (id, user_id, vault_id, recommendation_id, action, rating, rec_type, title, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.VaultID,
		entry.RecommendationID,
		entry.Action,
		nullableInt(entry.Rating),
		entry.RecType,
		entry.Title,
		entry.Description,
	)
	return err
}

func (r *PGRepo) EligibleUserIDs(ctx context.Context, minEntries int) ([]string, error) {
	const query = `
SELECT user_id
FROM recommendation_feedback
GROUP BY user_id
HAVING COUNT(*) >= $1
ORDER BY user_id`
	rows, err := r.DB.QueryContext(ctx, query, minEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		out = append(out, userID)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	const query = `
SELECT id, user_id, vault_id, recommendation_id, action, rating, rec_type, title, description, created_at
FROM recommendation_feedback
WHERE user_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var rating sql.NullInt64
		if err := rows.Scan(&e.ID, &e.UserID, &e.VaultID, &e.RecommendationID, &e.Action, &rating, &e.RecType, &e.Title, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		if rating.Valid {
			value := int(rating.Int64)
			e.Rating = &value
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
