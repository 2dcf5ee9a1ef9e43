package pricing

import (
	"math"

	"quotesmith/internal/domain/entities"
)

// Deviations above this percentage count as off-market.
const marketDeviationThreshold = 10.0

// EvaluatePosition classifies a calculated margin against the regional
// benchmark margin. PercentDiff is always the absolute distance.
func EvaluatePosition(margin, benchmark float64) entities.CompetitivePosition {
	diff := (margin - benchmark) / benchmark * 100

	position := entities.PositionAtMarket
	switch {
	case diff < -marketDeviationThreshold:
		position = entities.PositionBelowMarket
	case diff > marketDeviationThreshold:
		position = entities.PositionAboveMarket
	}

	return entities.CompetitivePosition{
		Position:    position,
		PercentDiff: math.Abs(diff),
	}
}
