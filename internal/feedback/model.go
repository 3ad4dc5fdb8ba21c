package feedback

import (
	"fmt"
	"strings"
	"time"
)

// Feedback actions.
const (
	ActionSelected  = "selected"
	ActionRated     = "rated"
	ActionSaved     = "saved"
	ActionShared    = "shared"
	ActionHandoff   = "handoff"
	ActionPurchased = "purchased"
	ActionRefreshed = "refreshed"
)

// Entry is one feedback event on a past recommendation. The candidate's
// type, title and description are denormalized onto the row so the learner
// can re-run keyword matching without the original candidate.
type Entry struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	VaultID          string    `json:"vaultId"`
	RecommendationID string    `json:"recommendationId"`
	Action           string    `json:"action"`
	Rating           *int      `json:"rating,omitempty"`
	RecType          string    `json:"recType"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Validate checks action and rating constraints.
func (e Entry) Validate() error {
	switch strings.ToLower(strings.TrimSpace(e.Action)) {
	case ActionSelected, ActionSaved, ActionShared, ActionHandoff, ActionPurchased, ActionRefreshed:
		return nil
	case ActionRated:
		if e.Rating == nil || *e.Rating < 1 || *e.Rating > 5 {
			return fmt.Errorf("rated feedback requires a rating between 1 and 5")
		}
		return nil
	default:
		return fmt.Errorf("unknown feedback action %q", e.Action)
	}
}

// Signal maps the entry to a numeric learning signal in [-1, 1]. Explicit
// ratings are centered at 3; implicit actions carry fixed values. The second
// return is false for actions without a signal.
func (e Entry) Signal() (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(e.Action)) {
	case ActionRated:
		if e.Rating == nil {
			return 0, false
		}
		return (float64(*e.Rating) - 3.0) / 2.0, true
	case ActionSelected:
		return 0.5, true
	case ActionSaved:
		return 0.6, true
	case ActionShared:
		return 0.7, true
	case ActionHandoff:
		return 0.8, true
	case ActionPurchased:
		return 1.0, true
	case ActionRefreshed:
		return -0.3, true
	default:
		return 0, false
	}
}
