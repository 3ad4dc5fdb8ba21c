package recs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
)

// ErrAllProvidersFailed is the terminal aggregation error: every configured
// source provider failed, so the run has nothing to work with.
var ErrAllProvidersFailed = errAllProvidersFailed{}

type errAllProvidersFailed struct{}

func (errAllProvidersFailed) Error() string { return "all source providers failed" }

// SourceProvider is the uniform capability every candidate source implements.
// Aggregation depends only on this interface, never on concrete adapters.
type SourceProvider interface {
	Name() string
	Search(ctx context.Context, filters SearchFilters) ([]Candidate, error)
}

const defaultProviderTimeout = 8 * time.Second

// Aggregator fans out to every configured provider, merges the survivors and
// deduplicates on (merchant, city).
type Aggregator struct {
	Providers []SourceProvider
	// Priority decides which duplicate survives; higher wins, ties keep the
	// incumbent. Unknown sources rank 0.
	Priority map[string]int
	Timeout  time.Duration
	// Target is the advisory candidate count. Aggregation never truncates.
	Target int
}

type providerResult struct {
	name       string
	candidates []Candidate
	err        error
}

// Aggregate runs all providers concurrently and merges their results.
// Individual provider failures (errors, panics, timeouts) are recorded and
// logged; the call only fails when every provider failed.
func (a *Aggregator) Aggregate(ctx context.Context, filters SearchFilters) ([]Candidate, error) {
	if len(a.Providers) == 0 {
		return nil, ErrAllProvidersFailed
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	if filters.Limit <= 0 {
		filters.Limit = a.Target
	}

	results := make([]providerResult, len(a.Providers))

	var g errgroup.Group
	for i, provider := range a.Providers {
		i, provider := i, provider
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			candidates, err := callProvider(callCtx, provider, filters)
			results[i] = providerResult{name: provider.Name(), candidates: candidates, err: err}
			// Provider failures never abort the batch.
			return nil
		})
	}
	_ = g.Wait()

	var merged []Candidate
	var failed []string
	for _, res := range results {
		if res.err != nil {
			failed = append(failed, res.name)
			metrics.IncProviderFailure()
			continue
		}
		merged = append(merged, res.candidates...)
	}

	if len(failed) == len(a.Providers) {
		return nil, ErrAllProvidersFailed
	}
	if len(failed) > 0 {
		telemetry.Info("aggregate.partial_failure", map[string]any{
			"failed_providers": strings.Join(failed, ","),
			"succeeded":        len(a.Providers) - len(failed),
		})
	}

	return dedupe(merged, a.Priority), nil
}

// callProvider wraps a provider call so a panic becomes an error and a hung
// provider counts as failed at timeout instead of being awaited indefinitely.
func callProvider(ctx context.Context, provider SourceProvider, filters SearchFilters) ([]Candidate, error) {
	type outcome struct {
		candidates []Candidate
		err        error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				ch <- outcome{err: fmt.Errorf("provider %s panicked: %v", provider.Name(), rec)}
			}
		}()
		candidates, err := provider.Search(ctx, filters)
		ch <- outcome{candidates: candidates, err: err}
	}()

	select {
	case out := <-ch:
		return out.candidates, out.err
	case <-ctx.Done():
		return nil, fmt.Errorf("provider %s: %w", provider.Name(), ctx.Err())
	}
}

// dedupe collapses candidates sharing a (merchant, city) key. Candidates
// without a usable merchant are never deduplicated.
func dedupe(candidates []Candidate, priority map[string]int) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	index := make(map[string]int)
	for _, c := range candidates {
		key := dedupeKey(c)
		if key == "" {
			out = append(out, c)
			continue
		}
		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, c)
			continue
		}
		if priority[c.Source] > priority[out[at].Source] {
			out[at] = c
		}
	}
	return out
}

func dedupeKey(c Candidate) string {
	merchant := strings.ToLower(strings.TrimSpace(c.Merchant))
	if merchant == "" {
		return ""
	}
	city := strings.ToLower(strings.TrimSpace(c.Location))
	return merchant + "|" + city
}
