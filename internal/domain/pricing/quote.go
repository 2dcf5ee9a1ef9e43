package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"quotesmith/internal/domain/entities"
)

// ErrQuoteGeneration wraps any failure inside the calculation pipeline.
// Callers receive either a complete quote or this error, never a partial
// result.
var ErrQuoteGeneration = errors.New("quote generation failed")

// Deposit policy thresholds. Totals at exactly the deposit threshold do not
// require a deposit; totals at exactly the reduced-percent threshold keep
// the full percentage.
const (
	depositRequiredAbove  = 500.0
	depositReducedAbove   = 2000.0
	depositPercentFull    = 50.0
	depositPercentReduced = 25.0
)

// BuildQuote runs the whole pricing pipeline over an already-resolved
// parameter snapshot: margin, tiers, regional benchmark, competitive
// position, recommendations and deposit policy.
//
// The clock is an explicit argument; with a fixed now, identical inputs
// yield identical quotes. Identity, status and timestamps are the caller's
// concern.
func BuildQuote(req entities.ServiceRequest, params entities.IndustryParameters, now time.Time) (quote entities.Quote, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrQuoteGeneration, r)
		}
	}()

	season := SeasonOf(now)
	region := ResolveRegion(req.Location)

	// Single source of truth for everything downstream.
	margin := CalculateMargin(req, params, season)

	laborCost := req.LaborHours * req.LaborRate
	materialCost := req.MaterialCost
	subtotal := laborCost + materialCost

	total := PriceAtMargin(subtotal, margin)
	profit := total - subtotal

	benchmark := BenchmarkMargin(req.JobType, region)
	position := EvaluatePosition(margin, benchmark)

	tiers := BuildTiers(req.Industry, params, subtotal)

	recs := Recommend(RecommendationInput{
		JobType:         req.JobType,
		Industry:        req.Industry,
		Season:          season,
		Competitive:     position,
		ExperienceYears: req.ExperienceYears,
		Total:           total,
	})

	return entities.Quote{
		CustomerName:      req.CustomerName,
		JobType:           req.JobType,
		Industry:          NormalizeIndustry(req.Industry),
		Description:       req.Description,
		Region:            region,
		LaborCost:         laborCost,
		MaterialCost:      materialCost,
		Subtotal:          subtotal,
		ProfitMargin:      margin,
		ProfitAmount:      profit,
		Total:             total,
		Deposit:           depositPolicy(total),
		RegionalAverage:   benchmark,
		Competitive:       position,
		Season:            season,
		SeasonalityFactor: SeasonalFactor(req.Industry, season),
		Tiers:             tiers,
		Recommendations:   recs,
	}, nil
}

func depositPolicy(total float64) entities.DepositPolicy {
	if total <= depositRequiredAbove {
		return entities.DepositPolicy{Required: false, BalanceDue: total}
	}

	percent := depositPercentFull
	if total > depositReducedAbove {
		percent = depositPercentReduced
	}
	amount := math.Round(total * percent / 100)

	return entities.DepositPolicy{
		Required:   true,
		Percent:    percent,
		Amount:     amount,
		BalanceDue: total - amount,
	}
}
