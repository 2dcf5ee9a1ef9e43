package pricing

import (
	"time"

	"quotesmith/internal/domain/entities"
)

// SeasonOf maps a calendar date to a season bucket. This is the only
// time-dependent input of the whole pipeline.
func SeasonOf(t time.Time) entities.Season {
	switch m := t.Month(); {
	case m >= time.February && m <= time.April:
		return entities.SeasonSpring
	case m >= time.May && m <= time.July:
		return entities.SeasonSummer
	case m >= time.August && m <= time.October:
		return entities.SeasonFall
	default:
		return entities.SeasonWinter
	}
}

// seasonalityFactors is the (industry, season) → demand multiplier table.
// Industries without seasonal swing are simply absent.
var seasonalityFactors = map[string]map[entities.Season]float64{
	"construction": {
		entities.SeasonSpring: 1.10,
		entities.SeasonSummer: 1.15,
		entities.SeasonFall:   1.05,
		entities.SeasonWinter: 0.85,
	},
	"landscaping": {
		entities.SeasonSpring: 1.20,
		entities.SeasonSummer: 1.10,
		entities.SeasonFall:   0.95,
		entities.SeasonWinter: 0.70,
	},
	"hvac": {
		entities.SeasonSpring: 0.95,
		entities.SeasonSummer: 1.20,
		entities.SeasonFall:   0.95,
		entities.SeasonWinter: 1.15,
	},
	"automotive": {
		entities.SeasonSpring: 1.00,
		entities.SeasonSummer: 1.05,
		entities.SeasonFall:   1.00,
		entities.SeasonWinter: 1.05,
	},
	"plumbing": {
		entities.SeasonSpring: 1.00,
		entities.SeasonSummer: 0.95,
		entities.SeasonFall:   1.00,
		entities.SeasonWinter: 1.10,
	},
	"cleaning": {
		entities.SeasonSpring: 1.10,
		entities.SeasonSummer: 1.00,
		entities.SeasonFall:   1.00,
		entities.SeasonWinter: 0.95,
	},
}

// SeasonalFactor returns the demand multiplier for an industry in a season,
// or 1.0 when the industry has no seasonality entry.
func SeasonalFactor(industry string, season entities.Season) float64 {
	row, ok := seasonalityFactors[NormalizeIndustry(industry)]
	if !ok {
		return 1.0
	}
	if f, ok := row[season]; ok {
		return f
	}
	return 1.0
}
