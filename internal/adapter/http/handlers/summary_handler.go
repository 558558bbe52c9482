package handlers

import (
	"errors"
	"log"
	"net/http"

	response "fieldhours/internal/adapter/http/dto/response"
	"fieldhours/internal/usecase"
	"fieldhours/pkg"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the derived reporting views consumed by the dashboard
// and report layers.

type SummaryHandler struct {
	usecase usecase.ISummaryUseCase
}

func NewSummaryHandler(uc usecase.ISummaryUseCase) *SummaryHandler {
	return &SummaryHandler{usecase: uc}
}

// Summarize returns per-technician period summaries for a date range, sorted
// descending by profit.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		invalidRequest(c)
		return
	}

	result, err := h.usecase.Summarize(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("[summary][handler] summarize failed err=%v", err)
		writeAppError(c, mapSummaryError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSummaryResult(result))
}

// Weekly returns one technician's weekly hour rollups for a date range.
func (h *SummaryHandler) Weekly(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		invalidRequest(c)
		return
	}
	technicianID := c.Query("technician_id")

	weeks, err := h.usecase.WeeklyRollups(c.Request.Context(), technicianID, from, to)
	if err != nil {
		log.Printf("[summary][handler] weekly failed technician_id=%s err=%v", technicianID, err)
		writeAppError(c, mapSummaryError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWeeklySummaries(weeks))
}

func mapSummaryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID), errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
