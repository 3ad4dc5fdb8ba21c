package recs

import "strings"

// Scorer matches candidates against vault preferences using keyword
// heuristics. It is the pluggable strategy behind Filtering and Matching; a
// future embedding-based matcher can replace it without changing either stage.
type Scorer interface {
	MatchesCategory(c Candidate, category string) bool
	MatchedInterests(c Candidate, interests []string) []string
	MatchedVibes(c Candidate, vibes []string) []string
	MatchesLoveLanguage(c Candidate, language string) bool
}

// KeywordScorer implements Scorer over a KeywordTable.
type KeywordScorer struct {
	Table KeywordTable
}

// NewKeywordScorer returns a KeywordScorer backed by the default table.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{Table: DefaultKeywords()}
}

func (s *KeywordScorer) MatchesCategory(c Candidate, category string) bool {
	key := strings.ToLower(strings.TrimSpace(category))
	return matchesAny(c.Text(), key, s.Table.Categories[key])
}

func (s *KeywordScorer) MatchedInterests(c Candidate, interests []string) []string {
	text := c.Text()
	var matched []string
	for _, interest := range interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		if matchesAny(text, key, s.Table.Categories[key]) {
			matched = append(matched, key)
		}
	}
	return matched
}

func (s *KeywordScorer) MatchedVibes(c Candidate, vibes []string) []string {
	text := c.Text()
	var matched []string
	for _, vibe := range vibes {
		key := strings.ToLower(strings.TrimSpace(vibe))
		if matchesAny(text, key, s.Table.Vibes[key]) {
			matched = append(matched, key)
		}
	}
	return matched
}

func (s *KeywordScorer) MatchesLoveLanguage(c Candidate, language string) bool {
	key := strings.ToLower(strings.TrimSpace(language))
	if key == "" {
		return false
	}
	if implied, ok := s.Table.TypeLanguages[strings.ToLower(c.Type)]; ok && implied == key {
		return true
	}
	return matchesAny(c.Text(), "", s.Table.LoveLanguages[key])
}

var _ Scorer = (*KeywordScorer)(nil)
