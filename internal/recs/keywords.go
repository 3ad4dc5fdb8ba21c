package recs

import "strings"

// Love language identifiers.
const (
	LangReceivingGifts     = "receiving_gifts"
	LangQualityTime        = "quality_time"
	LangActsOfService      = "acts_of_service"
	LangWordsOfAffirmation = "words_of_affirmation"
	LangPhysicalTouch      = "physical_touch"
)

// KeywordTable holds the heuristic keyword lists used for category, vibe and
// love-language matching. The lists are configuration data, not part of the
// algorithmic contract; callers may substitute their own.
type KeywordTable struct {
	// Categories maps an interest/dislike category to extra keywords that
	// count as a match beyond the category name itself.
	Categories map[string][]string
	// Vibes maps an aesthetic tag to its keywords.
	Vibes map[string][]string
	// LoveLanguages maps a love language to its keywords.
	LoveLanguages map[string][]string
	// TypeLanguages maps a recommendation type to the love language it
	// inherently expresses.
	TypeLanguages map[string]string
}

// DefaultKeywords returns the built-in heuristic table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		Categories: map[string][]string{
			"cooking":     {"chef", "kitchen", "culinary", "recipe", "baking", "cookware"},
			"music":       {"concert", "vinyl", "band", "playlist", "jazz", "gig"},
			"art":         {"gallery", "painting", "museum", "sketch", "pottery", "craft"},
			"outdoors":    {"hike", "hiking", "camping", "trail", "kayak", "picnic"},
			"books":       {"novel", "reading", "bookstore", "author", "literary"},
			"fitness":     {"yoga", "gym", "climbing", "pilates", "running"},
			"travel":      {"getaway", "trip", "weekend", "passport", "hotel"},
			"fashion":     {"jewelry", "handbag", "scarf", "designer", "boutique"},
			"gaming":      {"board game", "video game", "arcade", "puzzle"},
			"wine":        {"winery", "tasting", "sommelier", "vineyard", "champagne"},
			"coffee":      {"espresso", "roaster", "cafe", "barista", "brew"},
			"photography": {"camera", "film", "prints", "polaroid", "darkroom"},
			"gardening":   {"plants", "succulent", "flowers", "bouquet", "terrarium"},
			"wellness":    {"spa", "massage", "facial", "candle", "skincare", "sauna"},
		},
		Vibes: map[string][]string{
			"romantic":    {"candlelit", "sunset", "roses", "intimate", "date night"},
			"cozy":        {"blanket", "fireplace", "warm", "cabin", "homemade"},
			"minimalist":  {"simple", "clean", "sleek", "understated", "modern"},
			"adventurous": {"thrill", "adrenaline", "explore", "spontaneous", "off the beaten"},
			"luxurious":   {"premium", "five-star", "upscale", "gold", "exclusive"},
			"playful":     {"fun", "quirky", "silly", "whimsical", "surprise"},
			"vintage":     {"retro", "antique", "classic", "heritage", "timeless"},
			"artsy":       {"creative", "handmade", "studio", "bohemian", "eclectic"},
		},
		LoveLanguages: map[string][]string{
			LangReceivingGifts:     {"gift", "present", "keepsake", "surprise box", "bouquet"},
			LangQualityTime:        {"together", "class for two", "date", "experience", "getaway", "workshop"},
			LangActsOfService:      {"subscription", "delivery", "cleaning", "chore", "meal kit", "organizer"},
			LangWordsOfAffirmation: {"personalized", "engraved", "letter", "journal", "custom message"},
			LangPhysicalTouch:      {"massage", "spa", "couples", "cuddle", "dance class"},
		},
		TypeLanguages: map[string]string{
			TypeGift:       LangReceivingGifts,
			TypeExperience: LangQualityTime,
			TypeDate:       LangQualityTime,
		},
	}
}

// matchesAny reports whether text contains the term or any of its keywords.
func matchesAny(text, term string, keywords []string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term != "" && strings.Contains(text, term) {
		return true
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
