package interfaces

import (
	"context"

	"quotesmith/internal/domain/entities"
)

// IParameterRepository abstracts storage of per-user industry parameter
// overrides. Get returns (nil, nil) when no override exists; absence is not
// an error.

type IParameterRepository interface {
	Get(ctx context.Context, userID, industry string) (*entities.IndustryParameters, error)
	Put(ctx context.Context, userID, industry string, params entities.IndustryParameters) error
	Delete(ctx context.Context, userID, industry string) error
}
