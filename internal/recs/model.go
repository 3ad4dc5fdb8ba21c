package recs

import (
	"strings"

	"github.com/ronniejay22/Knot-APP-sub000/internal/hints"
	"github.com/ronniejay22/Knot-APP-sub000/internal/vaults"
)

// Candidate types.
const (
	TypeGift       = "gift"
	TypeExperience = "experience"
	TypeDate       = "date"
	TypeIdea       = "idea"
)

// Occasion labels used when building hint queries.
const (
	OccasionCasual     = "casual"
	OccasionThoughtful = "thoughtful"
	OccasionMemorable  = "memorable"
)

// Budget is a price range in minor currency units.
type Budget struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Candidate is one sourced recommendation flowing through the pipeline.
type Candidate struct {
	ID          string            `json:"id"`
	Source      string            `json:"source"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PriceCents  int64             `json:"priceCents"`
	Currency    string            `json:"currency"`
	URL         string            `json:"url,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Merchant    string            `json:"merchant,omitempty"`
	Location    string            `json:"location,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`

	InterestScore     float64 `json:"interestScore"`
	VibeScore         float64 `json:"vibeScore"`
	LoveLanguageScore float64 `json:"loveLanguageScore"`
	FinalScore        float64 `json:"finalScore"`
}

// Text returns the searchable text of the candidate: title, description and
// metadata values, lowercased.
func (c Candidate) Text() string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteByte(' ')
	b.WriteString(c.Description)
	for _, v := range c.Metadata {
		b.WriteByte(' ')
		b.WriteString(v)
	}
	return strings.ToLower(b.String())
}

// SearchFilters are the inputs every source provider receives. The generative
// source additionally reads the occasion, hints and partner context.
type SearchFilters struct {
	Interests []string
	Vibes     []string
	Location  string
	Budget    Budget
	Limit     int

	Occasion     string
	PartnerName  string
	LoveLanguage string
	Hints        []string
}

// Milestone is optional context for hint retrieval (e.g. "6 month anniversary").
type Milestone struct {
	Name string
	Type string
}

// Request is the caller-facing input of a pipeline run.
type Request struct {
	VaultID              string
	Occasion             string
	Budget               *Budget
	Milestone            *Milestone
	ExcludedTitles       []string
	ExcludedDescriptions []string
}

// State is the aggregate threaded through every pipeline stage. Earlier stage
// lists are preserved after later stages populate their own field.
type State struct {
	Vault    vaults.Vault
	Occasion string
	Budget   Budget
	Hints    []hints.Hint

	Raw      []Candidate
	Filtered []Candidate
	Ranked   []Candidate
	Selected []Candidate

	ExcludedTitles       map[string]struct{}
	ExcludedDescriptions map[string]struct{}

	// Err is the terminal error message; non-empty short-circuits the run.
	Err string
}

// Excluded reports whether a candidate was excluded by a refresh request.
func (s *State) Excluded(c Candidate) bool {
	if _, ok := s.ExcludedTitles[strings.ToLower(strings.TrimSpace(c.Title))]; ok {
		return true
	}
	if _, ok := s.ExcludedDescriptions[strings.ToLower(strings.TrimSpace(c.Description))]; ok {
		return true
	}
	return false
}

// OccasionLabel buckets an occasion into casual, thoughtful or memorable.
func OccasionLabel(occasion string) string {
	switch strings.ToLower(strings.TrimSpace(occasion)) {
	case "birthday", "anniversary", "valentines", "proposal", "holiday":
		return OccasionMemorable
	case "date_night", "apology", "thank_you", "milestone":
		return OccasionThoughtful
	default:
		return OccasionCasual
	}
}

// PriceTier classifies a price into low, mid or high by splitting the budget
// range into equal thirds. Prices outside the range clamp to the outer tiers.
func PriceTier(priceCents int64, budget Budget) string {
	if budget.Max <= budget.Min {
		return "mid"
	}
	span := budget.Max - budget.Min
	switch {
	case priceCents < budget.Min+span/3:
		return "low"
	case priceCents < budget.Min+2*span/3:
		return "mid"
	default:
		return "high"
	}
}
