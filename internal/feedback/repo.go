package feedback

import "context"

// Repo stores feedback entries.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	// EligibleUserIDs returns users with at least minEntries feedback rows.
	EligibleUserIDs(ctx context.Context, minEntries int) ([]string, error)
	// ListByUser returns a user's feedback, oldest first.
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
}
