package openai

import (
	"fmt"
	"strings"

	"github.com/ronniejay22/Knot-APP-sub000/internal/llm"
)

const ideasSystemPrompt = `You are a thoughtful gift concierge. Given a partner profile,
recent hints, and an occasion, propose specific gift, experience, date, or idea
recommendations. Respond with a JSON object of the form
{"ideas":[{"title":"...","description":"...","type":"gift|experience|date|idea","merchant":"","url":"","priceCents":0}]}.
Only include real, purchasable options when a URL is given; leave url empty for pure ideas.
Stay within the stated budget.`

func buildIdeasPrompt(input llm.IdeasInput) string {
	count := input.Count
	if count <= 0 {
		count = 3
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Propose %d recommendations for %s.\n", count, orDefault(input.PartnerName, "my partner"))
	fmt.Fprintf(&b, "Occasion: %s\n", orDefault(input.Occasion, "just because"))
	if len(input.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(input.Interests, ", "))
	}
	if len(input.Vibes) > 0 {
		fmt.Fprintf(&b, "Aesthetic vibes: %s\n", strings.Join(input.Vibes, ", "))
	}
	if input.LoveLanguage != "" {
		fmt.Fprintf(&b, "Primary love language: %s\n", input.LoveLanguage)
	}
	if input.BudgetMax > 0 {
		fmt.Fprintf(&b, "Budget: %d to %d (minor units, %s)\n", input.BudgetMin, input.BudgetMax, orDefault(input.Currency, "USD"))
	}
	if len(input.Hints) > 0 {
		b.WriteString("Recent hints:\n")
		for _, h := range input.Hints {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	return b.String()
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
