package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service records feedback and exposes on-demand learner runs.
type Service struct {
	Repo    Repo
	Learner *Learner
}

// Record validates and stores a feedback entry, assigning an id and
// normalized action.
func (s *Service) Record(ctx context.Context, entry Entry) (Entry, error) {
	entry.Action = strings.ToLower(strings.TrimSpace(entry.Action))
	entry.RecType = strings.ToLower(strings.TrimSpace(entry.RecType))
	if strings.TrimSpace(entry.UserID) == "" {
		return Entry{}, fmt.Errorf("userId is required")
	}
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, fmt.Errorf("store feedback: %w", err)
	}
	return entry, nil
}

// RunLearner triggers a full learner pass and returns how many users were
// updated.
func (s *Service) RunLearner(ctx context.Context) (int, error) {
	if s.Learner == nil {
		return 0, fmt.Errorf("learner not configured")
	}
	return s.Learner.RunAll(ctx)
}
