package usecase

import (
	"context"
	"errors"
	"strings"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/domain/pricing"
	"quotesmith/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidIndustry   = errors.New("invalid industry")
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrOverrideNotFound  = errors.New("parameter override not found")
)

// IParameterUseCase manages per-user parameter overrides.
//
// Get always resolves to something usable: the stored override when one
// exists, otherwise the industry defaults. Put and Delete mutate the
// override store only; built-in defaults are never modified.

type IParameterUseCase interface {
	Get(ctx context.Context, userID, industry string) (entities.IndustryParameters, bool, error)
	Put(ctx context.Context, userID, industry string, params entities.IndustryParameters) error
	Delete(ctx context.Context, userID, industry string) error
}

type ParameterUseCase struct {
	repo interfaces.IParameterRepository
	log  *zap.Logger
}

var _ IParameterUseCase = (*ParameterUseCase)(nil)

func NewParameterUseCase(repo interfaces.IParameterRepository, log *zap.Logger) *ParameterUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ParameterUseCase{repo: repo, log: log}
}

// Get returns the effective parameters for a user and industry. The boolean
// reports whether a stored override (vs the defaults) was returned.
func (u *ParameterUseCase) Get(ctx context.Context, userID, industry string) (entities.IndustryParameters, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.IndustryParameters{}, false, ErrInvalidUserID
	}
	industry = pricing.NormalizeIndustry(industry)

	override, err := u.repo.Get(ctx, userID, industry)
	if err != nil {
		return entities.IndustryParameters{}, false, err
	}
	if override != nil {
		return *override, true, nil
	}
	return pricing.DefaultParameters(industry), false, nil
}

func (u *ParameterUseCase) Put(ctx context.Context, userID, industry string, params entities.IndustryParameters) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(industry) == "" {
		return ErrInvalidIndustry
	}
	if err := validateParameters(params); err != nil {
		return err
	}

	industry = pricing.NormalizeIndustry(industry)
	if err := u.repo.Put(ctx, userID, industry, params); err != nil {
		return err
	}
	u.log.Info("parameter override saved",
		zap.String("user_id", userID),
		zap.String("industry", industry),
		zap.Float64("base_margin", params.BaseMargin))
	return nil
}

func (u *ParameterUseCase) Delete(ctx context.Context, userID, industry string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(industry) == "" {
		return ErrInvalidIndustry
	}
	return u.repo.Delete(ctx, userID, pricing.NormalizeIndustry(industry))
}

// validateParameters keeps overrides inside the ranges the calculation can
// absorb. BaseMargin must stay below the margin cap or tiers become
// meaningless; multipliers must be positive.
func validateParameters(p entities.IndustryParameters) error {
	if p.BaseMargin <= 0 || p.BaseMargin > pricing.MaxMargin {
		return ErrInvalidParameters
	}
	if p.LaborMultiplier <= 0 || p.MaterialMarkup <= 0 || p.RegionFactor <= 0 {
		return ErrInvalidParameters
	}
	if p.ExperienceWeight < 0 {
		return ErrInvalidParameters
	}
	for _, f := range p.ComplexityFactors {
		if f <= 0 {
			return ErrInvalidParameters
		}
	}
	return nil
}
