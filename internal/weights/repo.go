package weights

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "weights not found" }

// Repo stores one weights row per user.
type Repo interface {
	Upsert(ctx context.Context, w Weights) error
	GetByUserID(ctx context.Context, userID string) (Weights, error)
}
