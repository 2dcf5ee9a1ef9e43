package response

import "quotesmith/internal/domain/entities"

const (
	ParameterSourceOverride = "override"
	ParameterSourceDefault  = "default"
)

// ParameterResponse reports the effective parameters for an industry and
// whether they came from a stored override or the built-in defaults.
type ParameterResponse struct {
	Industry          string             `json:"industry"`
	Source            string             `json:"source"`
	BaseMargin        float64            `json:"base_margin"`
	LaborMultiplier   float64            `json:"labor_multiplier"`
	MaterialMarkup    float64            `json:"material_markup"`
	ExperienceWeight  float64            `json:"experience_weight"`
	RegionFactor      float64            `json:"region_factor"`
	ComplexityFactors map[string]float64 `json:"complexity_factors,omitempty"`
}

func FromParameters(industry string, p entities.IndustryParameters, stored bool) ParameterResponse {
	source := ParameterSourceDefault
	if stored {
		source = ParameterSourceOverride
	}
	return ParameterResponse{
		Industry:          industry,
		Source:            source,
		BaseMargin:        p.BaseMargin,
		LaborMultiplier:   p.LaborMultiplier,
		MaterialMarkup:    p.MaterialMarkup,
		ExperienceWeight:  p.ExperienceWeight,
		RegionFactor:      p.RegionFactor,
		ComplexityFactors: p.ComplexityFactors,
	}
}
