package pricing

import (
	"testing"

	"quotesmith/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMargin_FactorDirections(t *testing.T) {
	base := entities.ServiceRequest{Industry: "automotive", Complexity: entities.LevelMedium}
	params := DefaultParameters("automotive")

	neutral := CalculateMargin(base, params, entities.SeasonSpring)

	highComp := base
	highComp.CompetitionLevel = entities.LevelHigh
	lowComp := base
	lowComp.CompetitionLevel = entities.LevelLow
	urgent := base
	urgent.IsUrgent = true
	seasoned := base
	seasoned.ExperienceYears = 20

	assert.Less(t, CalculateMargin(highComp, params, entities.SeasonSpring), neutral)
	assert.Greater(t, CalculateMargin(lowComp, params, entities.SeasonSpring), neutral)
	assert.Greater(t, CalculateMargin(urgent, params, entities.SeasonSpring), neutral)
	assert.Greater(t, CalculateMargin(seasoned, params, entities.SeasonSpring), neutral)
}

func TestCalculateMargin_ExperienceCappedAtThirtyYears(t *testing.T) {
	params := DefaultParameters("construction")
	at30 := entities.ServiceRequest{Industry: "construction", ExperienceYears: 30}
	at50 := entities.ServiceRequest{Industry: "construction", ExperienceYears: 50}

	assert.InDelta(t,
		CalculateMargin(at30, params, entities.SeasonFall),
		CalculateMargin(at50, params, entities.SeasonFall),
		1e-9)
}

func TestCalculateMargin_RoundsToHalfPercentStep(t *testing.T) {
	params := DefaultParameters("default")
	req := entities.ServiceRequest{Industry: "default", ExperienceYears: 7, Complexity: entities.LevelHigh}

	m := CalculateMargin(req, params, entities.SeasonWinter)
	steps := m * 200
	assert.InDelta(t, steps, float64(int64(steps+0.5)), 1e-9, "margin %v is not a multiple of 0.005", m)
}

func TestCalculateMargin_ClampsToBounds(t *testing.T) {
	lowParams := entities.IndustryParameters{
		BaseMargin:   0.05,
		RegionFactor: 1.0,
	}
	assert.InDelta(t, MinMargin, CalculateMargin(entities.ServiceRequest{}, lowParams, entities.SeasonFall), 1e-9)

	highParams := entities.IndustryParameters{
		BaseMargin:       0.55,
		ExperienceWeight: 0.01,
		RegionFactor:     1.1,
	}
	req := entities.ServiceRequest{ExperienceYears: 30, CompetitionLevel: entities.LevelLow, IsUrgent: true}
	assert.InDelta(t, MaxMargin, CalculateMargin(req, highParams, entities.SeasonFall), 1e-9)
}

func TestCalculateMargin_UnknownComplexityIsNeutral(t *testing.T) {
	params := DefaultParameters("plumbing")
	odd := entities.ServiceRequest{Industry: "plumbing", Complexity: "extreme"}
	med := entities.ServiceRequest{Industry: "plumbing", Complexity: entities.LevelMedium}

	assert.InDelta(t, CalculateMargin(med, params, entities.SeasonFall), CalculateMargin(odd, params, entities.SeasonFall), 1e-9)
}
