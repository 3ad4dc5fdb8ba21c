package recs

import (
	"context"
	"errors"
	"strings"

	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
	"github.com/ronniejay22/Knot-APP-sub000/internal/vaults"
	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

// ErrVaultNotFound is returned when the requested vault does not exist.
var ErrVaultNotFound = vaults.ErrNotFound

// defaultBudget applies when neither the request nor the vault configures one.
var defaultBudget = Budget{Min: 2500, Max: 15000, Currency: "USD"}

// Service runs the recommendation pipeline for a vault.
type Service struct {
	Vaults   vaults.Repo
	Weights  weights.Repo
	Pipeline *Pipeline
}

// Result is the caller-facing outcome of a run.
type Result struct {
	Recommendations []Candidate
	// ErrMessage is the short terminal error; empty on success.
	ErrMessage string
}

// Recommend loads the vault and learned weights, assembles a fresh state and
// runs the pipeline. Infrastructure failures (vault lookup) surface as
// errors; pipeline-terminal conditions surface in Result.ErrMessage.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	vault, err := s.Vaults.GetByID(ctx, req.VaultID)
	if err != nil {
		return Result{}, err
	}

	w := weights.Default(vault.UserID)
	if s.Weights != nil {
		loaded, err := s.Weights.GetByUserID(ctx, vault.UserID)
		switch {
		case err == nil:
			w = loaded
		case errors.Is(err, weights.ErrNotFound):
			// No feedback history yet; every multiplier stays 1.0.
		default:
			telemetry.Error("recs.weights_load_failed", map[string]any{
				"user_id": vault.UserID,
				"error":   err.Error(),
			})
		}
	}

	state := &State{
		Vault:                vault,
		Occasion:             req.Occasion,
		Budget:               resolveBudget(req, vault),
		ExcludedTitles:       lowerSet(req.ExcludedTitles),
		ExcludedDescriptions: lowerSet(req.ExcludedDescriptions),
	}

	state = s.Pipeline.Run(ctx, state, RunInput{Milestone: req.Milestone, Weights: w})

	if state.Err != "" {
		return Result{ErrMessage: state.Err}, nil
	}
	return Result{Recommendations: state.Selected}, nil
}

func resolveBudget(req Request, vault vaults.Vault) Budget {
	if req.Budget != nil && req.Budget.Max > 0 {
		return *req.Budget
	}
	if b, ok := vault.BudgetFor(req.Occasion); ok && b.Max > 0 {
		return Budget{Min: b.Min, Max: b.Max, Currency: b.Currency}
	}
	return defaultBudget
}

func lowerSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		trimmed := strings.ToLower(strings.TrimSpace(item))
		if trimmed != "" {
			out[trimmed] = struct{}{}
		}
	}
	return out
}
