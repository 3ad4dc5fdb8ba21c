package weights

import (
	"strings"
	"time"
)

// Multiplier bounds. Weights center at 1.0 and never leave [0.5, 2.0].
const (
	MinWeight = 0.5
	MaxWeight = 2.0
)

// Weights is the per-user personalization multiplier record. Missing keys
// mean 1.0: behavior is unchanged until enough feedback accumulates.
type Weights struct {
	UserID        string             `json:"userId"`
	Interests     map[string]float64 `json:"interests"`
	Vibes         map[string]float64 `json:"vibes"`
	Types         map[string]float64 `json:"types"`
	LoveLanguages map[string]float64 `json:"loveLanguages"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// Default returns a weights record with no learned multipliers.
func Default(userID string) Weights {
	return Weights{
		UserID:        userID,
		Interests:     map[string]float64{},
		Vibes:         map[string]float64{},
		Types:         map[string]float64{},
		LoveLanguages: map[string]float64{},
	}
}

// Interest returns the learned multiplier for an interest category.
func (w Weights) Interest(category string) float64 {
	return lookup(w.Interests, category)
}

// Vibe returns the learned multiplier for a vibe tag.
func (w Weights) Vibe(tag string) float64 {
	return lookup(w.Vibes, tag)
}

// Type returns the learned multiplier for a recommendation type.
func (w Weights) Type(recType string) float64 {
	return lookup(w.Types, recType)
}

// LoveLanguage returns the learned multiplier for a love language.
func (w Weights) LoveLanguage(language string) float64 {
	return lookup(w.LoveLanguages, language)
}

// Clamp bounds a raw multiplier into [MinWeight, MaxWeight].
func Clamp(value float64) float64 {
	if value < MinWeight {
		return MinWeight
	}
	if value > MaxWeight {
		return MaxWeight
	}
	return value
}

func lookup(m map[string]float64, key string) float64 {
	if m == nil {
		return 1.0
	}
	if v, ok := m[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v
	}
	return 1.0
}
