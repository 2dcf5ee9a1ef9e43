package interfaces

import (
	"context"

	"quotesmith/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote history must be able to:
//   - persist a freshly calculated quote
//   - fetch one quote by id
//   - list a provider's quotes (user_id GSI)
//   - move a quote through its status lifecycle

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
