package recs

import (
	"context"
	"errors"
	"time"

	"github.com/ronniejay22/Knot-APP-sub000/internal/hints"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/metrics"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

// Terminal error messages. The caller only ever sees these short strings,
// never internal state.
const (
	ErrMsgNoCandidates = "We couldn't put together recommendations right now. Please try again."
	ErrMsgAllFiltered  = "Nothing matched the vault's preferences. Try widening interests or budget."
)

// Pipeline is the fixed stage graph of a recommendation run:
// hints -> aggregate -> filter -> match -> select -> verify, with early exits
// to a terminal error after aggregation and after filtering.
type Pipeline struct {
	Retriever  *hints.Retriever
	Aggregator *Aggregator
	Scorer     Scorer
	Verifier   *Verifier
}

// RunInput is everything a single pipeline invocation needs beyond the state.
type RunInput struct {
	Milestone *Milestone
	Weights   weights.Weights
}

// Run executes the stage chain, mutating state as it goes. Earlier stage
// lists stay populated for inspection after later stages run. A non-empty
// state.Err short-circuits the remaining stages.
func (p *Pipeline) Run(ctx context.Context, state *State, input RunInput) *State {
	start := time.Now()
	metrics.IncPipelineRun()
	defer func() {
		metrics.ObservePipelineDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
		if state.Err != "" {
			metrics.IncPipelineFailed()
		}
	}()

	p.retrieveHints(ctx, state, input.Milestone)
	p.aggregate(ctx, state)
	if state.Err != "" {
		return state
	}
	p.filter(state)
	if state.Err != "" {
		return state
	}
	p.match(state, input.Weights)
	p.selectPicks(state)
	p.verify(ctx, state)

	telemetry.Info("pipeline.complete", map[string]any{
		"vault_id": state.Vault.ID,
		"occasion": state.Occasion,
		"raw":      len(state.Raw),
		"filtered": len(state.Filtered),
		"selected": len(state.Selected),
	})
	return state
}

func (p *Pipeline) retrieveHints(ctx context.Context, state *State, milestone *Milestone) {
	input := hints.RetrieveInput{
		VaultID:       state.Vault.ID,
		OccasionLabel: OccasionLabel(state.Occasion),
		TopInterests:  state.Vault.TopInterests(3),
	}
	if milestone != nil {
		input.MilestoneName = milestone.Name
		input.MilestoneType = milestone.Type
	}
	state.Hints = p.Retriever.Retrieve(ctx, input)
}

func (p *Pipeline) aggregate(ctx context.Context, state *State) {
	hintTexts := make([]string, 0, len(state.Hints))
	for _, h := range state.Hints {
		hintTexts = append(hintTexts, h.Content)
	}
	filters := SearchFilters{
		Interests:    state.Vault.Interests,
		Vibes:        state.Vault.Vibes,
		Location:     state.Vault.Location,
		Budget:       state.Budget,
		Occasion:     state.Occasion,
		PartnerName:  state.Vault.PartnerName,
		LoveLanguage: state.Vault.PrimaryLoveLanguage,
		Hints:        hintTexts,
	}
	raw, err := p.Aggregator.Aggregate(ctx, filters)
	if err != nil {
		if !errors.Is(err, ErrAllProvidersFailed) {
			telemetry.Error("pipeline.aggregate_failed", map[string]any{
				"vault_id": state.Vault.ID,
				"error":    err.Error(),
			})
		}
		state.Err = ErrMsgNoCandidates
		return
	}

	kept := raw[:0]
	for _, c := range raw {
		if !state.Excluded(c) {
			kept = append(kept, c)
		}
	}
	state.Raw = kept

	if len(state.Raw) == 0 {
		state.Err = ErrMsgNoCandidates
	}
}

func (p *Pipeline) filter(state *State) {
	state.Filtered = Filter(state.Raw, state.Vault.Interests, state.Vault.Dislikes, p.Scorer)
	if len(state.Filtered) == 0 {
		state.Err = ErrMsgAllFiltered
	}
}

func (p *Pipeline) match(state *State, w weights.Weights) {
	state.Ranked = Match(state.Filtered, MatchInput{
		Interests:         state.Vault.Interests,
		Vibes:             state.Vault.Vibes,
		PrimaryLanguage:   state.Vault.PrimaryLoveLanguage,
		SecondaryLanguage: state.Vault.SecondaryLoveLanguage,
		Weights:           w,
	}, p.Scorer)
}

func (p *Pipeline) selectPicks(state *State) {
	state.Selected = SelectDiverse(state.Ranked, state.Budget)
}

func (p *Pipeline) verify(ctx context.Context, state *State) {
	backups := backupsOf(state.Ranked, state.Selected)
	state.Selected = p.Verifier.Verify(ctx, state.Selected, backups)
}

// backupsOf is the ranked pool minus the selected picks, in rank order.
func backupsOf(ranked, selected []Candidate) []Candidate {
	chosen := make(map[string]struct{}, len(selected))
	for _, c := range selected {
		chosen[c.ID] = struct{}{}
	}
	out := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		if _, ok := chosen[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}
