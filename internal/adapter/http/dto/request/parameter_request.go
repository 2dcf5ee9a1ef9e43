package request

import "quotesmith/internal/domain/entities"

// ParameterPutRequest is the payload for saving a per-user industry override.
type ParameterPutRequest struct {
	BaseMargin        float64            `json:"base_margin" binding:"required"`
	LaborMultiplier   float64            `json:"labor_multiplier" binding:"required"`
	MaterialMarkup    float64            `json:"material_markup" binding:"required"`
	ExperienceWeight  float64            `json:"experience_weight"`
	RegionFactor      float64            `json:"region_factor" binding:"required"`
	ComplexityFactors map[string]float64 `json:"complexity_factors"`
}

func (r ParameterPutRequest) ToParameters() entities.IndustryParameters {
	return entities.IndustryParameters{
		BaseMargin:        r.BaseMargin,
		LaborMultiplier:   r.LaborMultiplier,
		MaterialMarkup:    r.MaterialMarkup,
		ExperienceWeight:  r.ExperienceWeight,
		RegionFactor:      r.RegionFactor,
		ComplexityFactors: r.ComplexityFactors,
	}
}
