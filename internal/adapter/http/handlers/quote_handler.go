package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"quotesmith/internal/adapter/export"
	request "quotesmith/internal/adapter/http/dto/request"
	response "quotesmith/internal/adapter/http/dto/response"
	"quotesmith/internal/domain/pricing"
	"quotesmith/internal/usecase"
	"quotesmith/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = apperrors.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote generation and lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote calculates and persists a new quote from a service request.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.GenerateQuote(c.Request.Context(), payload.UserID, payload.ToServiceRequest())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes returns the quote history for one provider (user_id query param).
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByUserID(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ExportQuoteCSV streams one quote as a CSV attachment.
func (h *QuoteHandler) ExportQuoteCSV(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quote-%s.csv", q.ID))
	c.Status(http.StatusOK)
	if err := export.WriteQuoteCSV(c.Writer, q); err != nil {
		// Headers are already written; all we can do is abort the stream.
		c.Abort()
	}
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	q, err := h.usecase.AcceptByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	q, err := h.usecase.DeclineByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// SendQuote emails the quote to the customer and advances draft quotes to sent.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := apperrors.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.SendQuote(c.Request.Context(), c.Param("id"), payload.Recipient)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobType),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidRecipient):
		return apperrors.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return apperrors.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrQuoteGeneration):
		return apperrors.NewDomainError("QUOTE_GENERATION_FAILED", "Quote generation failed", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrMailerNotConfigured):
		return apperrors.NewDomainErrorSimple("MAILER_NOT_CONFIGURED", "Quote delivery is not configured", http.StatusServiceUnavailable)
	default:
		return apperrors.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
