package response

import (
	"time"

	"quotesmith/internal/domain/entities"
)

type TierResponse struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Profit       float64  `json:"profit"`
	ProfitMargin float64  `json:"profit_margin"`
	Features     []string `json:"features"`
	Recommended  bool     `json:"recommended"`
}

type RecommendationResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type DepositPolicyResponse struct {
	Required   bool    `json:"required"`
	Percent    float64 `json:"percent"`
	Amount     float64 `json:"amount"`
	BalanceDue float64 `json:"balance_due"`
}

type CompetitivePositionResponse struct {
	Position    string  `json:"position"`
	PercentDiff float64 `json:"percent_diff"`
}

type QuoteResponse struct {
	ID                string                      `json:"id"`
	UserID            string                      `json:"user_id,omitempty"`
	CustomerName      string                      `json:"customer_name,omitempty"`
	JobType           string                      `json:"job_type"`
	Industry          string                      `json:"industry"`
	Description       string                      `json:"description,omitempty"`
	Region            string                      `json:"region"`
	LaborCost         float64                     `json:"labor_cost"`
	MaterialCost      float64                     `json:"material_cost"`
	Subtotal          float64                     `json:"subtotal"`
	ProfitMargin      float64                     `json:"profit_margin"`
	ProfitAmount      float64                     `json:"profit_amount"`
	Total             float64                     `json:"total"`
	Deposit           DepositPolicyResponse       `json:"deposit"`
	RegionalAverage   float64                     `json:"regional_average"`
	Competitive       CompetitivePositionResponse `json:"competitive_position"`
	Season            string                      `json:"season"`
	SeasonalityFactor float64                     `json:"seasonality_factor"`
	Tiers             []TierResponse              `json:"tiers"`
	Recommendations   []RecommendationResponse    `json:"recommendations"`
	Status            string                      `json:"status"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	tiers := make([]TierResponse, 0, len(q.Tiers))
	for _, t := range q.Tiers {
		tiers = append(tiers, TierResponse{
			Name:         t.Name,
			Description:  t.Description,
			Price:        t.Price,
			Profit:       t.Profit,
			ProfitMargin: t.ProfitMargin,
			Features:     t.Features,
			Recommended:  t.Recommended,
		})
	}

	recs := make([]RecommendationResponse, 0, len(q.Recommendations))
	for _, rec := range q.Recommendations {
		recs = append(recs, RecommendationResponse{
			Type:        rec.Type,
			Title:       rec.Title,
			Description: rec.Description,
			Priority:    rec.Priority,
		})
	}

	return QuoteResponse{
		ID:           q.ID,
		UserID:       q.UserID,
		CustomerName: q.CustomerName,
		JobType:      q.JobType,
		Industry:     q.Industry,
		Description:  q.Description,
		Region:       string(q.Region),
		LaborCost:    q.LaborCost,
		MaterialCost: q.MaterialCost,
		Subtotal:     q.Subtotal,
		ProfitMargin: q.ProfitMargin,
		ProfitAmount: q.ProfitAmount,
		Total:        q.Total,
		Deposit: DepositPolicyResponse{
			Required:   q.Deposit.Required,
			Percent:    q.Deposit.Percent,
			Amount:     q.Deposit.Amount,
			BalanceDue: q.Deposit.BalanceDue,
		},
		RegionalAverage: q.RegionalAverage,
		Competitive: CompetitivePositionResponse{
			Position:    q.Competitive.Position,
			PercentDiff: q.Competitive.PercentDiff,
		},
		Season:            string(q.Season),
		SeasonalityFactor: q.SeasonalityFactor,
		Tiers:             tiers,
		Recommendations:   recs,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
