package vaults

import (
	"fmt"
	"strings"
	"time"
)

// BudgetRange is a per-occasion price range in minor currency units.
type BudgetRange struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Vault is the stored profile of a gift recipient.
type Vault struct {
	ID                    string                 `json:"id"`
	UserID                string                 `json:"userId"`
	PartnerName           string                 `json:"partnerName"`
	Interests             []string               `json:"interests"`
	Dislikes              []string               `json:"dislikes"`
	Vibes                 []string               `json:"vibes"`
	PrimaryLoveLanguage   string                 `json:"primaryLoveLanguage"`
	SecondaryLoveLanguage string                 `json:"secondaryLoveLanguage"`
	Budgets               map[string]BudgetRange `json:"budgets"`
	Location              string                 `json:"location"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

// Validate enforces vault invariants. Interests and dislikes must be disjoint.
func (v Vault) Validate() error {
	disliked := make(map[string]struct{}, len(v.Dislikes))
	for _, d := range v.Dislikes {
		disliked[normalizeCategory(d)] = struct{}{}
	}
	for _, i := range v.Interests {
		if _, ok := disliked[normalizeCategory(i)]; ok {
			return fmt.Errorf("category %q is both an interest and a dislike", i)
		}
	}
	return nil
}

// BudgetFor returns the budget range configured for an occasion, falling back
// to the "default" entry when the occasion has none.
func (v Vault) BudgetFor(occasion string) (BudgetRange, bool) {
	if b, ok := v.Budgets[normalizeCategory(occasion)]; ok {
		return b, true
	}
	b, ok := v.Budgets["default"]
	return b, ok
}

// TopInterests returns up to n interests in stored order.
func (v Vault) TopInterests(n int) []string {
	if n > len(v.Interests) {
		n = len(v.Interests)
	}
	return v.Interests[:n]
}

func normalizeCategory(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
