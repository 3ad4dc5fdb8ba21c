package recs

import "strings"

// selectTarget is how many recommendations a run ultimately returns.
const selectTarget = 3

// SelectDiverse greedily picks up to 3 candidates maximizing diversity across
// price tier, type and merchant. The first pick is the highest final_score;
// each following slot takes the candidate adding the most unrepresented
// dimensions, with ties broken by final_score and then original rank.
func SelectDiverse(ranked []Candidate, budget Budget) []Candidate {
	if len(ranked) == 0 {
		return []Candidate{}
	}

	picked := make([]Candidate, 0, selectTarget)
	used := make([]bool, len(ranked))

	picked = append(picked, ranked[0])
	used[0] = true

	for len(picked) < selectTarget {
		tiers, types, merchants := representedDimensions(picked, budget)

		best := -1
		bestDiversity := -1
		for i, c := range ranked {
			if used[i] {
				continue
			}
			diversity := 0
			if !tiers[PriceTier(c.PriceCents, budget)] {
				diversity++
			}
			if !types[strings.ToLower(c.Type)] {
				diversity++
			}
			if merchant := normalizeMerchant(c.Merchant); merchant != "" && !merchants[merchant] {
				diversity++
			}
			// Strict greater keeps earlier rank on diversity and score ties.
			if diversity > bestDiversity {
				best = i
				bestDiversity = diversity
			}
		}
		if best < 0 {
			break
		}
		picked = append(picked, ranked[best])
		used[best] = true
	}

	return picked
}

func representedDimensions(picked []Candidate, budget Budget) (tiers, types, merchants map[string]bool) {
	tiers = make(map[string]bool)
	types = make(map[string]bool)
	merchants = make(map[string]bool)
	for _, c := range picked {
		tiers[PriceTier(c.PriceCents, budget)] = true
		types[strings.ToLower(c.Type)] = true
		if merchant := normalizeMerchant(c.Merchant); merchant != "" {
			merchants[merchant] = true
		}
	}
	return tiers, types, merchants
}

func normalizeMerchant(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
