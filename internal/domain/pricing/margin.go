package pricing

import (
	"math"

	"quotesmith/internal/domain/entities"
)

// Margin bounds and granularity. Every computed margin lands on a multiple
// of marginStep inside [MinMargin, MaxMargin].
const (
	MinMargin  = 0.15
	MaxMargin  = 0.60
	marginStep = 0.005

	maxExperienceYears = 30
)

// CalculateMargin combines the resolved parameters, seasonality, region
// factor, competition level and urgency into one bounded profit margin.
//
// The multiplicative order is fixed; the result is the single source of
// truth consumed by every downstream component and must be computed exactly
// once per quote.
func CalculateMargin(req entities.ServiceRequest, params entities.IndustryParameters, season entities.Season) float64 {
	complexityFactor := params.ComplexityFactor(req.Complexity)

	experienceYears := math.Min(maxExperienceYears, req.ExperienceYears)
	experienceMultiplier := 1 + experienceYears*params.ExperienceWeight

	seasonalFactor := SeasonalFactor(req.Industry, season)

	competitionFactor := 1.0
	switch req.CompetitionLevel {
	case entities.LevelHigh:
		competitionFactor = 0.92
	case entities.LevelLow:
		competitionFactor = 1.08
	}

	urgencyFactor := 1.0
	if req.IsUrgent {
		urgencyFactor = 1.15
	}

	raw := params.BaseMargin * complexityFactor * experienceMultiplier *
		seasonalFactor * params.RegionFactor * competitionFactor * urgencyFactor

	return clamp(roundToStep(raw), MinMargin, MaxMargin)
}

// roundToStep rounds to the nearest marginStep: multiply by 200, round,
// divide by 200.
func roundToStep(v float64) float64 {
	return math.Round(v*(1/marginStep)) / (1 / marginStep)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
