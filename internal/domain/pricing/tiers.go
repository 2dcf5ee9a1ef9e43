package pricing

import (
	"math"

	"quotesmith/internal/domain/entities"
)

// Tier margin multipliers applied to the industry base margin. The ordering
// basic < standard < premium keeps tier prices monotonic because the pricing
// function costBase/(1-margin) is increasing in margin.
const (
	basicMarginFactor   = 0.85
	premiumMarginFactor = 1.25
)

// BuildTiers derives the three purchasable price points from the parameter
// base margin and the job cost base. Tier margins intentionally use the raw
// parameter base margin, not the fully-adjusted quote margin: the adjusted
// margin drives the headline total, the parameter margin drives the tier
// ladder the customer picks from.
func BuildTiers(industry string, params entities.IndustryParameters, costBase float64) []entities.TierOption {
	type tierSpec struct {
		name        string
		margin      float64
		recommended bool
	}
	specs := []tierSpec{
		{TierBasic, params.BaseMargin * basicMarginFactor, false},
		{TierStandard, params.BaseMargin, true},
		{TierPremium, params.BaseMargin * premiumMarginFactor, false},
	}

	tiers := make([]entities.TierOption, 0, len(specs))
	for _, s := range specs {
		price := PriceAtMargin(costBase, s.margin)
		c := tierCopyFor(industry, s.name)
		tiers = append(tiers, entities.TierOption{
			Name:         s.name,
			Description:  c.description,
			Price:        price,
			Profit:       price - costBase,
			ProfitMargin: s.margin,
			Features:     c.features,
			Recommended:  s.recommended,
		})
	}
	return tiers
}

// PriceAtMargin converts a cost base into a price carrying the given margin,
// rounded to whole currency units.
func PriceAtMargin(costBase, margin float64) float64 {
	return math.Round(costBase / (1 - margin))
}
