package response

import (
	"time"

	"quotesmith/internal/domain/entities"
)

type DepositPaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
