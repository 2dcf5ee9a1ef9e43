package entities

// IndustryParameters are the per-industry pricing coefficients a quote
// calculation is resolved against. A user-specific override (keyed by user id
// + industry) takes precedence over the static defaults; unknown industries
// fall back to the generic "default" bucket.
//
// Parameters are resolved once per calculation and never mutated afterward.
type IndustryParameters struct {
	BaseMargin        float64            `json:"base_margin"`
	LaborMultiplier   float64            `json:"labor_multiplier"`
	MaterialMarkup    float64            `json:"material_markup"`
	ExperienceWeight  float64            `json:"experience_weight"`
	RegionFactor      float64            `json:"region_factor"`
	ComplexityFactors map[string]float64 `json:"complexity_factors"`
}

// ComplexityFactor returns the multiplier for the given complexity level,
// or 1.0 when the level is not configured.
func (p IndustryParameters) ComplexityFactor(level string) float64 {
	if f, ok := p.ComplexityFactors[level]; ok {
		return f
	}
	return 1.0
}
