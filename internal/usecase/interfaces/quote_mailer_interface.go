package interfaces

import (
	"context"

	"quotesmith/internal/domain/entities"
)

// IQuoteMailer abstracts outbound quote delivery (e.g. AWS SES). The mailer
// renders and sends the quote; it does not change quote state.
type IQuoteMailer interface {
	SendQuote(ctx context.Context, q entities.Quote, recipient string) error
}
