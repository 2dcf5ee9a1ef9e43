package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quotesmith/internal/domain/entities"
	mock_interfaces "quotesmith/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func acceptedQuote() entities.Quote {
	return entities.Quote{
		ID:     "q-1",
		Status: entities.QuoteStatusAccepted,
		Total:  2400,
		Deposit: entities.DepositPolicy{
			Required:   true,
			Percent:    25,
			Amount:     600,
			BalanceDue: 1800,
		},
	}
}

func TestDepositPaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{not json`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		q := acceptedQuote()
		q.Status = entities.QuoteStatusSent
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrQuoteNotAccepted) {
			t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
		}
	})

	t.Run("deposit not required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		q := acceptedQuote()
		q.Total = 400
		q.Deposit = entities.DepositPolicy{Required: false, BalanceDue: 400}
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrDepositNotRequired) {
			t.Fatalf("expected ErrDepositNotRequired, got %v", err)
		}
	})

	t.Run("payload amount forced from quote deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != 600.0 {
					t.Fatalf("expected transaction_amount 600, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) { return p, nil })

		created, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "pay-1" {
			t.Fatalf("expected provider payment id, got %q", created.ID)
		}
		if created.Amount != 600 {
			t.Fatalf("expected amount 600, got %v", created.Amount)
		}
		if created.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", created.Status)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`provider: {"status":401,"error":"unauthorized"}`))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`provider: {"status":400,"error":"bad_request"}`))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("repo create failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, quoteRepo, gateway, nil)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("pay-1", "approved", json.RawMessage(`{"id":"pay-1"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.DepositPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrDepositPaymentNotFound) {
			t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.DepositPayment{ID: "pay-1", Amount: 600}, nil)

		p, err := uc.GetByID(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 600 {
			t.Fatalf("expected amount 600, got %v", p.Amount)
		}
	})
}

func TestDepositPaymentUseCase_ListByQuoteID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ListByQuoteID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DepositPayment{{ID: "a"}}, nil)

		got, err := uc.ListByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(got))
		}
	})
}
