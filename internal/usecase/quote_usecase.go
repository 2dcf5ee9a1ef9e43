package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/domain/pricing"
	"quotesmith/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrInvalidJobType      = errors.New("invalid job type")
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrMailerNotConfigured = errors.New("quote mailer not configured")
)

// IQuoteUseCase exposes the quote pricing operations.
//
// GenerateQuote is the primary entry point: it resolves the parameter
// snapshot, runs the pricing pipeline and persists the resulting quote.
// The remaining operations manage the quote history and lifecycle.

type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, userID string, req entities.ServiceRequest) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error)
	AcceptByID(ctx context.Context, id string) (entities.Quote, error)
	DeclineByID(ctx context.Context, id string) (entities.Quote, error)
	SendQuote(ctx context.Context, id, recipient string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo      interfaces.IQuoteRepository
	paramRepo interfaces.IParameterRepository
	mailer    interfaces.IQuoteMailer
	// industry defaults overridden from configuration; consulted after the
	// user override store and before the built-in tables.
	configDefaults map[string]entities.IndustryParameters
	log            *zap.Logger
	now            func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	paramRepo interfaces.IParameterRepository,
	mailer interfaces.IQuoteMailer,
	configDefaults map[string]entities.IndustryParameters,
	log *zap.Logger,
) *QuoteUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:           repo,
		paramRepo:      paramRepo,
		mailer:         mailer,
		configDefaults: configDefaults,
		log:            log,
		now:            time.Now,
	}
}

func (u *QuoteUseCase) GenerateQuote(ctx context.Context, userID string, req entities.ServiceRequest) (entities.Quote, error) {
	req.JobType = strings.TrimSpace(req.JobType)
	if req.JobType == "" {
		return entities.Quote{}, ErrInvalidJobType
	}
	if strings.TrimSpace(req.Industry) == "" {
		req.Industry = pricing.DeriveIndustry(req.JobType)
	}

	params := u.resolveParameters(ctx, userID, req.Industry)

	q, err := pricing.BuildQuote(req, params, u.now().UTC())
	if err != nil {
		u.log.Error("quote calculation failed",
			zap.String("user_id", userID),
			zap.String("job_type", req.JobType),
			zap.Error(err))
		return entities.Quote{}, err
	}

	now := u.now().UTC()
	q.ID = uuid.NewString()
	q.UserID = strings.TrimSpace(userID)
	q.Status = entities.QuoteStatusDraft
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.log.Info("quote generated",
		zap.String("quote_id", created.ID),
		zap.String("user_id", created.UserID),
		zap.String("job_type", created.JobType),
		zap.Float64("total", created.Total),
		zap.Float64("margin", created.ProfitMargin))
	return created, nil
}

// resolveParameters picks the coefficient snapshot for one calculation:
// user override, then configured industry defaults, then built-in tables.
// Override lookup is an optimization; a failing store degrades to defaults
// instead of failing the calculation.
func (u *QuoteUseCase) resolveParameters(ctx context.Context, userID, industry string) entities.IndustryParameters {
	industry = pricing.NormalizeIndustry(industry)

	if userID = strings.TrimSpace(userID); userID != "" && u.paramRepo != nil {
		override, err := u.paramRepo.Get(ctx, userID, industry)
		if err != nil {
			u.log.Warn("parameter override lookup failed; using defaults",
				zap.String("user_id", userID),
				zap.String("industry", industry),
				zap.Error(err))
		} else if override != nil {
			return *override
		}
	}

	if p, ok := u.configDefaults[industry]; ok {
		return p
	}
	return pricing.DefaultParameters(industry)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *QuoteUseCase) AcceptByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) DeclineByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) SendQuote(ctx context.Context, id, recipient string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" || !strings.Contains(recipient, "@") {
		return entities.Quote{}, ErrInvalidRecipient
	}
	if u.mailer == nil {
		return entities.Quote{}, ErrMailerNotConfigured
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := u.mailer.SendQuote(ctx, q, recipient); err != nil {
		u.log.Error("quote delivery failed",
			zap.String("quote_id", q.ID),
			zap.String("recipient", recipient),
			zap.Error(err))
		return entities.Quote{}, err
	}

	// Only drafts advance to sent; accepted/declined quotes keep their state.
	if q.Status == entities.QuoteStatusDraft {
		updated, err := u.repo.UpdateStatusByID(ctx, q.ID, entities.QuoteStatusSent)
		if err != nil {
			return entities.Quote{}, err
		}
		if updated.ID != "" {
			q = updated
		}
	}

	u.log.Info("quote delivered",
		zap.String("quote_id", q.ID),
		zap.String("recipient", recipient))
	return q, nil
}
