package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for deposit collection.
//
// `payment_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type DepositPaymentCreateRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}

// SendQuoteRequest carries the customer address for quote delivery.
type SendQuoteRequest struct {
	Recipient string `json:"recipient" binding:"required"`
}
