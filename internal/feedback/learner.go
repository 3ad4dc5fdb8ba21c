package feedback

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ronniejay22/Knot-APP-sub000/internal/recs"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

const (
	// MinUserEntries is the feedback count below which a user keeps defaults.
	MinUserEntries = 3
	// minGroupSamples is the per-dimension sample floor; sparser groups stay 1.0.
	minGroupSamples = 3
	// damping scales the average signal into a multiplier delta.
	damping = 0.3
)

// Learner recomputes per-user preference weights from accumulated feedback.
// It runs out of band and is idempotent: the same feedback set always yields
// the same weights.
type Learner struct {
	Feedback Repo
	Weights  weights.Repo
	Scorer   *recs.KeywordScorer
}

// NewLearner wires a learner over the default keyword table.
func NewLearner(feedbackRepo Repo, weightsRepo weights.Repo) *Learner {
	return &Learner{
		Feedback: feedbackRepo,
		Weights:  weightsRepo,
		Scorer:   recs.NewKeywordScorer(),
	}
}

// RunAll recomputes weights for every eligible user and reports how many
// users were updated. A failure on one user does not stop the run.
func (l *Learner) RunAll(ctx context.Context) (int, error) {
	start := time.Now()
	metrics.IncLearnerRun()

	userIDs, err := l.Feedback.EligibleUserIDs(ctx, MinUserEntries)
	if err != nil {
		return 0, fmt.Errorf("list eligible users: %w", err)
	}

	updated := 0
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		if err := l.RunUser(ctx, userID); err != nil {
			telemetry.Error("learner.user_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			continue
		}
		updated++
	}

	metrics.AddLearnerUsersUpdated(uint64(updated))
	telemetry.Info("learner.run_complete", map[string]any{
		"eligible_users": len(userIDs),
		"updated_users":  updated,
		"duration_ms":    time.Since(start).Milliseconds(),
	})
	return updated, nil
}

// RunUser recomputes and stores one user's weights from their full feedback
// history.
func (l *Learner) RunUser(ctx context.Context, userID string) error {
	entries, err := l.Feedback.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list feedback: %w", err)
	}
	if len(entries) < MinUserEntries {
		return nil
	}
	w := l.Compute(userID, entries)
	if err := l.Weights.Upsert(ctx, w); err != nil {
		return fmt.Errorf("upsert weights: %w", err)
	}
	return nil
}

// Compute derives a weights record from feedback entries. Signals are grouped
// by the interest categories, vibe tags, recommendation type and love
// languages each recommendation matched; a group with enough samples gets
// weight = clamp(1 + damping * avg(signal)).
func (l *Learner) Compute(userID string, entries []Entry) weights.Weights {
	interests := newAccumulator()
	vibes := newAccumulator()
	types := newAccumulator()
	languages := newAccumulator()

	categoryKeys := sortedKeys(l.Scorer.Table.Categories)
	vibeKeys := sortedKeys(l.Scorer.Table.Vibes)
	languageKeys := sortedKeys(l.Scorer.Table.LoveLanguages)

	for _, entry := range entries {
		signal, ok := entry.Signal()
		if !ok {
			continue
		}
		candidate := recs.Candidate{
			Type:        entry.RecType,
			Title:       entry.Title,
			Description: entry.Description,
		}
		for _, category := range l.Scorer.MatchedInterests(candidate, categoryKeys) {
			interests.add(category, signal)
		}
		for _, vibe := range l.Scorer.MatchedVibes(candidate, vibeKeys) {
			vibes.add(vibe, signal)
		}
		if candidate.Type != "" {
			types.add(candidate.Type, signal)
		}
		for _, language := range languageKeys {
			if l.Scorer.MatchesLoveLanguage(candidate, language) {
				languages.add(language, signal)
			}
		}
	}

	w := weights.Default(userID)
	w.Interests = interests.weights()
	w.Vibes = vibes.weights()
	w.Types = types.weights()
	w.LoveLanguages = languages.weights()
	w.UpdatedAt = time.Now().UTC()
	return w
}

type accumulator struct {
	sums   map[string]float64
	counts map[string]int
}

func newAccumulator() *accumulator {
	return &accumulator{sums: map[string]float64{}, counts: map[string]int{}}
}

func (a *accumulator) add(key string, signal float64) {
	a.sums[key] += signal
	a.counts[key]++
}

func (a *accumulator) weights() map[string]float64 {
	out := map[string]float64{}
	for key, count := range a.counts {
		if count < minGroupSamples {
			continue
		}
		avg := a.sums[key] / float64(count)
		out[key] = weights.Clamp(1.0 + damping*avg)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
