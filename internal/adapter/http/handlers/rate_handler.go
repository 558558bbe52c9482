package handlers

import (
	"errors"
	"net/http"

	request "fieldhours/internal/adapter/http/dto/request"
	response "fieldhours/internal/adapter/http/dto/response"
	"fieldhours/internal/usecase"
	"fieldhours/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatePayload = pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Invalid rate payload", http.StatusBadRequest)

// RateHandler covers the admin configuration surface: technician rate
// agreements and per-customer travel agreements.

type RateHandler struct {
	usecase usecase.IRateUseCase
}

func NewRateHandler(uc usecase.IRateUseCase) *RateHandler {
	return &RateHandler{usecase: uc}
}

func (h *RateHandler) UpsertRateAgreement(c *gin.Context) {
	var payload request.RateAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRatePayload)
		return
	}

	agreement, err := h.usecase.UpsertRateAgreement(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapRateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRateAgreement(agreement))
}

func (h *RateHandler) GetRateAgreement(c *gin.Context) {
	agreement, err := h.usecase.GetRateAgreement(c.Request.Context(), c.Param("technician_id"))
	if err != nil {
		writeAppError(c, mapRateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromRateAgreement(agreement))
}

func (h *RateHandler) UpsertTravelAgreement(c *gin.Context) {
	var payload request.TravelAgreementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidRatePayload)
		return
	}

	agreement, err := h.usecase.UpsertTravelAgreement(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeAppError(c, mapRateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromTravelAgreement(agreement))
}

func mapRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidRate),
		errors.Is(err, usecase.ErrInvalidTravel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateNotFound):
		return pkg.NewDomainErrorSimple("RATE_NOT_FOUND", "Rate agreement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
