package recs

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
)

// maxReplacementAttempts bounds how many backups a single slot may try.
const maxReplacementAttempts = 3

// URLChecker confirms an external link still resolves.
type URLChecker interface {
	Check(ctx context.Context, url string) bool
}

// Verifier confirms each selected candidate's link and swaps in backups for
// unavailable picks. It degrades to a best-effort result, never an error: a
// slot that exhausts its replacement budget keeps the original pick.
type Verifier struct {
	Checker URLChecker
}

// Verify checks all picks concurrently; replacements within a slot run
// sequentially because each attempt depends on the previous outcome. Ideas
// (no external URL) are always available. Backups are drawn from the ranked
// pool in order, skipping candidates already chosen or already tried.
func (v *Verifier) Verify(ctx context.Context, selected, backups []Candidate) []Candidate {
	if len(selected) == 0 {
		return []Candidate{}
	}

	out := make([]Candidate, len(selected))
	copy(out, selected)

	pool := &backupPool{backups: backups}
	for _, c := range selected {
		pool.reserve(c.ID)
	}

	var g errgroup.Group
	for i := range out {
		i := i
		g.Go(func() error {
			v.verifySlot(ctx, &out[i], pool)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (v *Verifier) verifySlot(ctx context.Context, slot *Candidate, pool *backupPool) {
	if v.available(ctx, *slot) {
		return
	}

	original := *slot
	for attempt := 0; attempt < maxReplacementAttempts; attempt++ {
		replacement, ok := pool.next()
		if !ok {
			break
		}
		if v.available(ctx, replacement) {
			*slot = replacement
			metrics.IncAvailabilitySwap()
			telemetry.Info("availability.replaced", map[string]any{
				"original_id":    original.ID,
				"replacement_id": replacement.ID,
				"attempt":        attempt + 1,
			})
			return
		}
	}

	// A partial result beats an empty one: keep the original pick.
	telemetry.Info("availability.kept_unavailable", map[string]any{
		"candidate_id": original.ID,
	})
}

func (v *Verifier) available(ctx context.Context, c Candidate) bool {
	if c.URL == "" {
		// Ideas have no link to verify.
		return true
	}
	if v.Checker == nil {
		return true
	}
	return v.Checker.Check(ctx, c.URL)
}

// backupPool hands out ranked backups at most once across all slots.
type backupPool struct {
	mu       sync.Mutex
	backups  []Candidate
	reserved map[string]struct{}
}

func (p *backupPool) reserve(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reserved == nil {
		p.reserved = make(map[string]struct{})
	}
	p.reserved[id] = struct{}{}
}

func (p *backupPool) next() (Candidate, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.reserved == nil {
		p.reserved = make(map[string]struct{})
	}
	for _, c := range p.backups {
		if _, taken := p.reserved[c.ID]; taken {
			continue
		}
		p.reserved[c.ID] = struct{}{}
		return c, true
	}
	return Candidate{}, false
}
