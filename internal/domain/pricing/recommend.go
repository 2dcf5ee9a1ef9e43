package pricing

import (
	"fmt"
	"strings"

	"quotesmith/internal/domain/entities"
)

// Recommendation types.
const (
	RecTypePricing     = "pricing"
	RecTypeSeasonal    = "seasonal"
	RecTypePositioning = "positioning"
	RecTypeFinancing   = "financing"
	RecTypeUpsell      = "upsell"
)

// Recommendation priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// upsellSuggestions maps known job types to a cross-sell recommendation.
type upsellSuggestion struct {
	title       string
	description string
	priority    string
}

var upsellSuggestions = map[string]upsellSuggestion{
	"bathroom remodel": {
		title:       "Offer a fixture upgrade package",
		description: "Customers remodeling a bathroom frequently accept a bundled faucet, showerhead and lighting upgrade at quote time.",
		priority:    PriorityLow,
	},
	"kitchen remodel": {
		title:       "Offer an appliance installation add-on",
		description: "Bundle appliance hookup and haul-away with the remodel before a competitor gets the call.",
		priority:    PriorityLow,
	},
	"lawn mowing": {
		title:       "Pitch a seasonal maintenance plan",
		description: "Recurring mowing contracts smooth revenue; offer a discounted season-long plan with this quote.",
		priority:    PriorityHigh,
	},
	"oil change": {
		title:       "Bundle a multi-point inspection",
		description: "An inspection bundle lifts average ticket size and surfaces follow-up repair work.",
		priority:    PriorityLow,
	},
	"house cleaning": {
		title:       "Offer a recurring cleaning schedule",
		description: "Convert one-time cleans into biweekly service with a first-visit discount.",
		priority:    PriorityHigh,
	},
}

// RecommendationInput is the computed quote state the rule set inspects.
type RecommendationInput struct {
	JobType         string
	Industry        string
	Season          entities.Season
	Competitive     entities.CompetitivePosition
	ExperienceYears float64
	Total           float64
}

// Recommend runs the ordered advisory rules over the computed quote state.
// Each rule emits at most one recommendation; rules are independent and the
// output keeps rule order with no deduplication or resorting.
func Recommend(in RecommendationInput) []entities.Recommendation {
	recs := []entities.Recommendation{}

	if in.Competitive.Position == entities.PositionAboveMarket && in.Competitive.PercentDiff > 15 {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypePricing,
			Title:       "Consider a competitive adjustment",
			Description: fmt.Sprintf("Your margin is %.1f%% above the regional average for this job type. A modest reduction could win more bids.", in.Competitive.PercentDiff),
			Priority:    PriorityMedium,
		})
	}

	if in.Competitive.Position == entities.PositionBelowMarket && in.Competitive.PercentDiff > 15 {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypePricing,
			Title:       "Potential for margin improvement",
			Description: fmt.Sprintf("Your margin is %.1f%% below the regional average. There is room to raise prices without losing competitiveness.", in.Competitive.PercentDiff),
			Priority:    PriorityHigh,
		})
	}

	industry := NormalizeIndustry(in.Industry)

	if in.Season == entities.SeasonWinter && industry == "construction" {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypeSeasonal,
			Title:       "Offer a winter booking incentive",
			Description: "Construction demand dips in winter. A small off-season discount keeps crews busy and fills the spring pipeline.",
			Priority:    PriorityMedium,
		})
	}

	if in.Season == entities.SeasonSpring && industry == "landscaping" {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypeSeasonal,
			Title:       "Charge a premium for spring scheduling",
			Description: "Spring is peak landscaping demand. Prioritize premium-priced slots and waitlist lower-margin work.",
			Priority:    PriorityHigh,
		})
	}

	if in.ExperienceYears < 2 {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypePositioning,
			Title:       "Emphasize guarantees and customer service",
			Description: "With limited years in business, lead with satisfaction guarantees, reviews and responsiveness rather than track record.",
			Priority:    PriorityHigh,
		})
	}

	if in.ExperienceYears > 10 {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypePositioning,
			Title:       "Leverage your expertise for premium pricing",
			Description: "Over a decade of experience justifies pricing above market. Make it prominent in the quote.",
			Priority:    PriorityMedium,
		})
	}

	if in.Total > 1000 {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypeFinancing,
			Title:       "Offer payment plans",
			Description: "Jobs over 1,000 close faster when customers can split the balance into scheduled payments.",
			Priority:    PriorityMedium,
		})
	}

	if u, ok := upsellSuggestions[strings.ToLower(strings.TrimSpace(in.JobType))]; ok {
		recs = append(recs, entities.Recommendation{
			Type:        RecTypeUpsell,
			Title:       u.title,
			Description: u.description,
			Priority:    u.priority,
		})
	}

	return recs
}
