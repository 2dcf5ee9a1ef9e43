package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotesmith/internal/adapter/http/handlers/mocks"
	"quotesmith/internal/domain/entities"
	"quotesmith/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestDepositPaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrQuoteNotAccepted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("deposit not required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrDepositNotRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "q-1", gomock.Any()).Return(entities.DepositPayment{ID: "pay-1", QuoteID: "q-1", Amount: 600, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{"payment_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["amount"] != 600.0 {
			t.Fatalf("unexpected amount: %v", body["amount"])
		}
	})
}

func TestDepositPaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return(nil, usecase.ErrInvalidPaymentQuoteID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DepositPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:quote_id", h.GetPaymentByQuoteID)

		old := entities.DepositPayment{ID: "old", QuoteID: "q-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusApproved}
		latest := entities.DepositPayment{ID: "latest", QuoteID: "q-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.DepositPayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadPaymentPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readPaymentPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readPaymentPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readPaymentPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readPaymentPayload(makeCtx(`{"payment_payload":null}`)); err == nil {
		t.Fatalf("expected payment_payload empty error")
	}

	payload, err = readPaymentPayload(makeCtx(`{"payment_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readPaymentPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapDepositPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrQuoteNotAccepted, http.StatusConflict},
		{usecase.ErrDepositNotRequired, http.StatusConflict},
		{usecase.ErrDepositPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapDepositPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
