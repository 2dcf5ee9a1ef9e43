package handlers

import (
	"errors"
	"net/http"

	request "quotesmith/internal/adapter/http/dto/request"
	response "quotesmith/internal/adapter/http/dto/response"
	"quotesmith/internal/domain/pricing"
	"quotesmith/internal/usecase"
	"quotesmith/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ParameterHandler handles HTTP requests for per-user pricing parameters.

type ParameterHandler struct {
	usecase usecase.IParameterUseCase
}

func NewParameterHandler(uc usecase.IParameterUseCase) *ParameterHandler {
	return &ParameterHandler{usecase: uc}
}

// GetParameters returns the effective parameters for a user and industry.
func (h *ParameterHandler) GetParameters(c *gin.Context) {
	industry := c.Param("industry")

	params, stored, err := h.usecase.Get(c.Request.Context(), c.Query("user_id"), industry)
	if err != nil {
		appErr := mapParameterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParameters(pricing.NormalizeIndustry(industry), params, stored))
}

// PutParameters stores a per-user override for an industry.
func (h *ParameterHandler) PutParameters(c *gin.Context) {
	var payload request.ParameterPutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := apperrors.NewDomainErrorSimple("INVALID_PARAMETERS_INPUT", "Invalid parameters payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	industry := c.Param("industry")
	params := payload.ToParameters()
	if err := h.usecase.Put(c.Request.Context(), c.Query("user_id"), industry, params); err != nil {
		appErr := mapParameterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParameters(pricing.NormalizeIndustry(industry), params, true))
}

// DeleteParameters removes a per-user override, restoring the defaults.
func (h *ParameterHandler) DeleteParameters(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Query("user_id"), c.Param("industry")); err != nil {
		appErr := mapParameterError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapParameterError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidIndustry),
		errors.Is(err, usecase.ErrInvalidParameters):
		return apperrors.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return apperrors.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
