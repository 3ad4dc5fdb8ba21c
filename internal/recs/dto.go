package recs

// RecommendRequest is the HTTP body of a pipeline run.
type RecommendRequest struct {
	Occasion             string        `json:"occasion" binding:"required"`
	Budget               *BudgetDTO    `json:"budget"`
	Milestone            *MilestoneDTO `json:"milestone"`
	ExcludedTitles       []string      `json:"excludedTitles"`
	ExcludedDescriptions []string      `json:"excludedDescriptions"`
}

// BudgetDTO overrides the vault's per-occasion budget for one run.
type BudgetDTO struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max" binding:"required"`
	Currency string `json:"currency"`
}

// MilestoneDTO is optional milestone context for hint retrieval.
type MilestoneDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToRequest maps the HTTP body onto a pipeline request.
func (r RecommendRequest) ToRequest(vaultID string) Request {
	req := Request{
		VaultID:              vaultID,
		Occasion:             r.Occasion,
		ExcludedTitles:       r.ExcludedTitles,
		ExcludedDescriptions: r.ExcludedDescriptions,
	}
	if r.Budget != nil {
		req.Budget = &Budget{Min: r.Budget.Min, Max: r.Budget.Max, Currency: r.Budget.Currency}
	}
	if r.Milestone != nil {
		req.Milestone = &Milestone{Name: r.Milestone.Name, Type: r.Milestone.Type}
	}
	return req
}
