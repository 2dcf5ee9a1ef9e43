package pricing

import (
	"strings"

	"quotesmith/internal/domain/entities"
)

// DefaultIndustry is the generic parameter/benchmark/feature bucket used
// whenever an industry or job type is not recognized.
const DefaultIndustry = "default"

// industryDefaults holds the static pricing coefficients per industry.
// Adding an industry or tuning a factor is a data change, not a code change.
var industryDefaults = map[string]entities.IndustryParameters{
	"construction": {
		BaseMargin:       0.25,
		LaborMultiplier:  1.20,
		MaterialMarkup:   1.30,
		ExperienceWeight: 0.005,
		RegionFactor:     1.05,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.20,
		},
	},
	"landscaping": {
		BaseMargin:       0.30,
		LaborMultiplier:  1.10,
		MaterialMarkup:   1.25,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.15,
		},
	},
	"automotive": {
		BaseMargin:       0.35,
		LaborMultiplier:  1.15,
		MaterialMarkup:   1.40,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.95, entities.LevelMedium: 1.00, entities.LevelHigh: 1.10,
		},
	},
	"plumbing": {
		BaseMargin:       0.32,
		LaborMultiplier:  1.25,
		MaterialMarkup:   1.35,
		ExperienceWeight: 0.005,
		RegionFactor:     1.02,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.20,
		},
	},
	"electrical": {
		BaseMargin:       0.33,
		LaborMultiplier:  1.25,
		MaterialMarkup:   1.35,
		ExperienceWeight: 0.005,
		RegionFactor:     1.02,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.25,
		},
	},
	"hvac": {
		BaseMargin:       0.30,
		LaborMultiplier:  1.20,
		MaterialMarkup:   1.30,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.20,
		},
	},
	"cleaning": {
		BaseMargin:       0.40,
		LaborMultiplier:  1.05,
		MaterialMarkup:   1.20,
		ExperienceWeight: 0.003,
		RegionFactor:     0.98,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.95, entities.LevelMedium: 1.00, entities.LevelHigh: 1.10,
		},
	},
	"locksmith": {
		BaseMargin:       0.45,
		LaborMultiplier:  1.10,
		MaterialMarkup:   1.50,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.95, entities.LevelMedium: 1.00, entities.LevelHigh: 1.15,
		},
	},
	"handyman": {
		BaseMargin:       0.35,
		LaborMultiplier:  1.10,
		MaterialMarkup:   1.25,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.10,
		},
	},
	DefaultIndustry: {
		BaseMargin:       0.30,
		LaborMultiplier:  1.15,
		MaterialMarkup:   1.30,
		ExperienceWeight: 0.004,
		RegionFactor:     1.00,
		ComplexityFactors: map[string]float64{
			entities.LevelLow: 0.90, entities.LevelMedium: 1.00, entities.LevelHigh: 1.15,
		},
	},
}

// jobTypeIndustries derives an industry from a job type when the caller did
// not supply one.
var jobTypeIndustries = map[string]string{
	"bathroom remodel":         "construction",
	"kitchen remodel":          "construction",
	"deck construction":        "construction",
	"lawn mowing":              "landscaping",
	"tree trimming":            "landscaping",
	"garden design":            "landscaping",
	"oil change":               "automotive",
	"brake replacement":        "automotive",
	"water heater replacement": "plumbing",
	"drain cleaning":           "plumbing",
	"panel upgrade":            "electrical",
	"outlet installation":      "electrical",
	"ac installation":          "hvac",
	"furnace repair":           "hvac",
	"house cleaning":           "cleaning",
	"deep cleaning":            "cleaning",
	"lock rekey":               "locksmith",
	"lockout service":          "locksmith",
}

// NormalizeIndustry lowercases the industry name and maps unknown values to
// the default bucket.
func NormalizeIndustry(industry string) string {
	key := strings.ToLower(strings.TrimSpace(industry))
	if _, ok := industryDefaults[key]; ok {
		return key
	}
	return DefaultIndustry
}

// DeriveIndustry guesses the industry from a job type. It returns the
// default bucket for unknown job types.
func DeriveIndustry(jobType string) string {
	if ind, ok := jobTypeIndustries[strings.ToLower(strings.TrimSpace(jobType))]; ok {
		return ind
	}
	return DefaultIndustry
}

// DefaultParameters returns the static coefficients for an industry, falling
// back to the generic bucket. It never fails.
func DefaultParameters(industry string) entities.IndustryParameters {
	return industryDefaults[NormalizeIndustry(industry)]
}

// Industries lists the industries with dedicated default parameters.
func Industries() []string {
	out := make([]string, 0, len(industryDefaults))
	for k := range industryDefaults {
		out = append(out, k)
	}
	return out
}
