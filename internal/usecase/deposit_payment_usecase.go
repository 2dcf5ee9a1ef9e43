package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositPaymentNotFound     = errors.New("deposit payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrQuoteNotAccepted           = errors.New("quote not accepted")
	ErrDepositNotRequired         = errors.New("quote does not require a deposit")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase encapsulates deposit collection for accepted quotes.
//
// CreateAndApprove charges the deposit amount carried by the quote through the
// external gateway and records the provider response.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo      interfaces.IDepositPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	log       *zap.Logger
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, log *zap.Logger) *DepositPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DepositPaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, log: log}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentQuoteID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.quoteRepo == nil {
		return entities.DepositPayment{}, errors.New("quote repository not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		u.log.Error("loading quote for deposit failed", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.DepositPayment{}, err
	}
	if q.ID == "" {
		return entities.DepositPayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		return entities.DepositPayment{}, ErrQuoteNotAccepted
	}
	if !q.Deposit.Required {
		return entities.DepositPayment{}, ErrDepositNotRequired
	}

	// Link the charge back to the quote and force the amount from the quote's
	// deposit policy; the caller's payload never sets the amount.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.DepositPayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for quote %s", quoteID)
	}
	reqMap["transaction_amount"] = q.Deposit.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error("payment gateway call failed", zap.String("quote_id", quoteID), zap.Error(err))
		if isGatewayUnauthorized(err) {
			return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.DepositPayment{}, err
	}
	u.log.Info("payment gateway success",
		zap.String("quote_id", quoteID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", zap.String("quote_id", quoteID), zap.Error(err))
	}

	p := entities.DepositPayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             q.Deposit.Amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("deposit payment create failed",
			zap.String("quote_id", quoteID),
			zap.String("payment_id", p.ID),
			zap.Error(err))
		return entities.DepositPayment{}, err
	}
	return created, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}
