package request

import (
	"strings"

	"quotesmith/internal/domain/entities"
)

const defaultLaborRate = 75

// QuoteCreateRequest is the payload for quote generation.
//
// Numeric fields are pointers so that "absent" and "zero" can be told apart:
// absent labor_rate falls back to the default hourly rate, absent hours/costs
// fall back to zero. Invalid level strings are normalized to "medium".
type QuoteCreateRequest struct {
	UserID           string   `json:"user_id"`
	JobType          string   `json:"job_type" binding:"required"`
	Industry         string   `json:"industry"`
	Description      string   `json:"description"`
	LaborHours       *float64 `json:"labor_hours"`
	LaborRate        *float64 `json:"labor_rate"`
	MaterialCost     *float64 `json:"material_cost"`
	Location         string   `json:"location"`
	ExperienceYears  *float64 `json:"experience_years"`
	Complexity       string   `json:"complexity"`
	CompetitionLevel string   `json:"competition_level"`
	IsUrgent         bool     `json:"is_urgent"`
	CustomerName     string   `json:"customer_name"`
}

func (r QuoteCreateRequest) ToServiceRequest() entities.ServiceRequest {
	return entities.ServiceRequest{
		JobType:          strings.TrimSpace(r.JobType),
		Industry:         strings.TrimSpace(r.Industry),
		Description:      r.Description,
		LaborHours:       floatOrDefault(r.LaborHours, 0),
		LaborRate:        floatOrDefault(r.LaborRate, defaultLaborRate),
		MaterialCost:     floatOrDefault(r.MaterialCost, 0),
		Location:         r.Location,
		ExperienceYears:  floatOrDefault(r.ExperienceYears, 0),
		Complexity:       normalizeLevel(r.Complexity),
		CompetitionLevel: normalizeLevel(r.CompetitionLevel),
		IsUrgent:         r.IsUrgent,
		CustomerName:     strings.TrimSpace(r.CustomerName),
	}
}

func floatOrDefault(v *float64, def float64) float64 {
	if v == nil || *v < 0 {
		return def
	}
	return *v
}

func normalizeLevel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case entities.LevelLow:
		return entities.LevelLow
	case entities.LevelHigh:
		return entities.LevelHigh
	default:
		return entities.LevelMedium
	}
}
