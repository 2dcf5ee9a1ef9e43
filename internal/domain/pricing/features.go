package pricing

// Tier names, always emitted in this order.
const (
	TierBasic    = "Basic"
	TierStandard = "Standard"
	TierPremium  = "Premium"
)

type tierCopy struct {
	description string
	features    []string
}

// tierCatalog holds the per-industry tier descriptions and feature lists.
// Unrecognized industries fall back to the default entry.
var tierCatalog = map[string]map[string]tierCopy{
	"construction": {
		TierBasic: {
			description: "Essential workmanship with standard-grade materials",
			features: []string{
				"Standard-grade materials",
				"30-day workmanship warranty",
				"Debris removal",
			},
		},
		TierStandard: {
			description: "Our most popular package for lasting results",
			features: []string{
				"Mid-grade materials",
				"1-year workmanship warranty",
				"Debris removal and site cleanup",
				"Progress updates with photos",
			},
		},
		TierPremium: {
			description: "Top-shelf materials and white-glove project management",
			features: []string{
				"Premium materials",
				"5-year workmanship warranty",
				"Dedicated project manager",
				"Priority scheduling",
				"Post-completion walkthrough",
			},
		},
	},
	"landscaping": {
		TierBasic: {
			description: "A tidy yard at an entry price",
			features: []string{
				"Mowing and edging",
				"Clipping removal",
			},
		},
		TierStandard: {
			description: "Full-service care for a healthy lawn",
			features: []string{
				"Mowing, edging and trimming",
				"Seasonal fertilization",
				"Clipping removal",
				"Service reminders",
			},
		},
		TierPremium: {
			description: "Complete grounds care with priority visits",
			features: []string{
				"Everything in Standard",
				"Weed and pest treatment",
				"Shrub and hedge shaping",
				"Priority weather rescheduling",
			},
		},
	},
	"automotive": {
		TierBasic: {
			description: "The repair done right with OEM-equivalent parts",
			features: []string{
				"OEM-equivalent parts",
				"90-day parts and labor warranty",
			},
		},
		TierStandard: {
			description: "Repair plus a full multi-point inspection",
			features: []string{
				"OEM parts",
				"12-month parts and labor warranty",
				"Multi-point inspection",
				"Fluid top-off",
			},
		},
		TierPremium: {
			description: "Dealer-level service without the dealer wait",
			features: []string{
				"OEM parts",
				"24-month parts and labor warranty",
				"Multi-point inspection with report",
				"Complimentary wash and vacuum",
				"Loaner vehicle when available",
			},
		},
	},
	"cleaning": {
		TierBasic: {
			description: "A solid clean of the essentials",
			features: []string{
				"Kitchen and bathrooms",
				"Dusting and vacuuming",
			},
		},
		TierStandard: {
			description: "Whole-home cleaning, our most booked option",
			features: []string{
				"All rooms",
				"Inside microwave and appliance exteriors",
				"Baseboards and window sills",
				"Supplies included",
			},
		},
		TierPremium: {
			description: "Deep clean with inside-appliance detailing",
			features: []string{
				"Everything in Standard",
				"Inside oven and refrigerator",
				"Interior windows",
				"Satisfaction re-clean guarantee",
			},
		},
	},
	DefaultIndustry: {
		TierBasic: {
			description: "Covers the essentials of the job",
			features: []string{
				"Standard materials",
				"30-day workmanship guarantee",
			},
		},
		TierStandard: {
			description: "The recommended balance of quality and price",
			features: []string{
				"Quality materials",
				"1-year workmanship guarantee",
				"Job-site cleanup",
			},
		},
		TierPremium: {
			description: "Best materials, priority service and extended warranty",
			features: []string{
				"Premium materials",
				"Extended warranty",
				"Priority scheduling",
				"Dedicated point of contact",
			},
		},
	},
}

func tierCopyFor(industry, tier string) tierCopy {
	row, ok := tierCatalog[NormalizeIndustry(industry)]
	if !ok {
		row = tierCatalog[DefaultIndustry]
	}
	if c, ok := row[tier]; ok {
		return c
	}
	return tierCatalog[DefaultIndustry][tier]
}
