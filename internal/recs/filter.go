package recs

import "sort"

// maxFiltered is the working-set cap after the filtering stage.
const maxFiltered = 9

// Filter removes candidates matching a disliked category, scores survivors by
// interest alignment and returns at most the top 9 by interest_score. The
// sort is stable: ties keep their original order.
func Filter(candidates []Candidate, interests, dislikes []string, scorer Scorer) []Candidate {
	if len(candidates) == 0 {
		return []Candidate{}
	}

	survivors := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if matchesAnyCategory(c, dislikes, scorer) {
			continue
		}
		c.InterestScore = interestScore(c, interests, scorer)
		survivors = append(survivors, c)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].InterestScore > survivors[j].InterestScore
	})

	if len(survivors) > maxFiltered {
		survivors = survivors[:maxFiltered]
	}
	return survivors
}

// interestScore is the matched-interest count normalized by the number of
// vault interests; 0.0 when nothing matches or no interests are configured.
func interestScore(c Candidate, interests []string, scorer Scorer) float64 {
	if len(interests) == 0 {
		return 0
	}
	matched := scorer.MatchedInterests(c, interests)
	return float64(len(matched)) / float64(len(interests))
}

func matchesAnyCategory(c Candidate, categories []string, scorer Scorer) bool {
	for _, category := range categories {
		if scorer.MatchesCategory(c, category) {
			return true
		}
	}
	return false
}
