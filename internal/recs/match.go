package recs

import (
	"sort"

	"github.com/ronniejay22/Knot-APP-sub000/internal/weights"
)

// Boost constants. A single matched vibe lifts the score by 30%; love
// language alignment adds a fixed bonus for the primary language and a
// smaller one for the secondary.
const (
	vibeBoostPerMatch    = 0.30
	primaryLanguageBoost = 0.25
	secondaryLangBoost   = 0.10
)

// MatchInput carries the vault preferences Match scores against.
type MatchInput struct {
	Interests         []string
	Vibes             []string
	PrimaryLanguage   string
	SecondaryLanguage string
	Weights           weights.Weights
}

// Match applies vibe and love-language multiplicative boosts and re-ranks by
// final_score. Learned weights multiply each component before combination and
// default to 1.0, so behavior is unchanged absent feedback history.
//
// The max(interest_score, 1.0) floor keeps candidates the filtering stage
// does not score (interest_score 0.0) from collapsing to a zero final score.
func Match(candidates []Candidate, input MatchInput, scorer Scorer) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		c := &out[i]

		vibeBoost := 0.0
		for _, vibe := range scorer.MatchedVibes(*c, input.Vibes) {
			vibeBoost += vibeBoostPerMatch * input.Weights.Vibe(vibe)
		}
		c.VibeScore = vibeBoost

		languageBoost := 0.0
		switch {
		case input.PrimaryLanguage != "" && scorer.MatchesLoveLanguage(*c, input.PrimaryLanguage):
			languageBoost = primaryLanguageBoost * input.Weights.LoveLanguage(input.PrimaryLanguage)
		case input.SecondaryLanguage != "" && scorer.MatchesLoveLanguage(*c, input.SecondaryLanguage):
			languageBoost = secondaryLangBoost * input.Weights.LoveLanguage(input.SecondaryLanguage)
		}
		c.LoveLanguageScore = languageBoost

		base := c.InterestScore * interestWeight(*c, input, scorer)
		if base < 1.0 {
			base = 1.0
		}
		c.FinalScore = base * (1 + vibeBoost) * (1 + languageBoost) * input.Weights.Type(c.Type)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	return out
}

// interestWeight averages the learned multipliers of the interest categories
// the candidate matched; 1.0 when none matched.
func interestWeight(c Candidate, input MatchInput, scorer Scorer) float64 {
	matched := scorer.MatchedInterests(c, input.Interests)
	if len(matched) == 0 {
		return 1.0
	}
	sum := 0.0
	for _, category := range matched {
		sum += input.Weights.Interest(category)
	}
	return sum / float64(len(matched))
}
