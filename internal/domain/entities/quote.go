package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - quotesmith is the source of truth for quote/deposit state.
//   - A quote is computed once and never recalculated in place; a new
//     calculation always produces a new quote.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
)

// Complexity and competition levels accepted on a service request.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Season buckets derived from the calendar date of the calculation.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Region buckets used for competitive benchmarking.
type Region string

const (
	RegionNortheast Region = "Northeast"
	RegionSoutheast Region = "Southeast"
	RegionMidwest   Region = "Midwest"
	RegionSouthwest Region = "Southwest"
	RegionWest      Region = "West"
	RegionDefault   Region = "default"
)

// ServiceRequest is the raw job description a quote is calculated from.
// Numeric fields are already defaulted by the boundary (see dto/request);
// the engine treats them as-is.
type ServiceRequest struct {
	JobType          string  `json:"job_type"`
	Industry         string  `json:"industry"`
	Description      string  `json:"description"`
	LaborHours       float64 `json:"labor_hours"`
	LaborRate        float64 `json:"labor_rate"`
	MaterialCost     float64 `json:"material_cost"`
	Location         string  `json:"location"`
	ExperienceYears  float64 `json:"experience_years"`
	Complexity       string  `json:"complexity"`
	CompetitionLevel string  `json:"competition_level"`
	IsUrgent         bool    `json:"is_urgent"`
	CustomerName     string  `json:"customer_name"`
}

// CompetitivePosition classifies the calculated margin against the regional
// historical benchmark. PercentDiff is the absolute percentage distance.
type CompetitivePosition struct {
	Position    string  `json:"position"` // below-market, at-market, above-market
	PercentDiff float64 `json:"percent_diff"`
}

const (
	PositionBelowMarket = "below-market"
	PositionAtMarket    = "at-market"
	PositionAboveMarket = "above-market"
)

// TierOption is one purchasable pricing tier. Price is in whole currency
// units; Profit is Price minus the job cost base.
type TierOption struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Profit       float64  `json:"profit"`
	ProfitMargin float64  `json:"profit_margin"`
	Features     []string `json:"features"`
	Recommended  bool     `json:"recommended"`
}

// DepositPolicy is derived from the quote total: deposits are required above
// 500, at 50% up to 2000 and 25% beyond.
type DepositPolicy struct {
	Required   bool    `json:"required"`
	Percent    float64 `json:"percent"`
	Amount     float64 `json:"amount"`
	BalanceDue float64 `json:"balance_due"`
}

// Recommendation is one prioritized advisory message emitted by the rule set.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // low, medium, high
}

// Quote is the immutable result of one pricing calculation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Tiers are always ordered basic/standard/premium; Recommendations keep
// rule-emission order.
type Quote struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	CustomerName      string              `json:"customer_name"`
	JobType           string              `json:"job_type"`
	Industry          string              `json:"industry"`
	Description       string              `json:"description"`
	Region            Region              `json:"region"`
	LaborCost         float64             `json:"labor_cost"`
	MaterialCost      float64             `json:"material_cost"`
	Subtotal          float64             `json:"subtotal"`
	ProfitMargin      float64             `json:"profit_margin"`
	ProfitAmount      float64             `json:"profit_amount"`
	Total             float64             `json:"total"`
	Deposit           DepositPolicy       `json:"deposit"`
	RegionalAverage   float64             `json:"regional_average"`
	Competitive       CompetitivePosition `json:"competitive_position"`
	Season            Season              `json:"season"`
	SeasonalityFactor float64             `json:"seasonality_factor"`
	Tiers             []TierOption        `json:"tiers"`
	Recommendations   []Recommendation    `json:"recommendations"`
	Status            QuoteStatus         `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
