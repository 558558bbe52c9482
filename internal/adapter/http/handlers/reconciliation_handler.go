package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fieldhours/internal/adapter/http/dto/request"
	response "fieldhours/internal/adapter/http/dto/response"
	"fieldhours/internal/usecase"
	"fieldhours/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the reconciliation pass and the manual agree
// override.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// Reconcile runs one pass for a technician and date range. The auto-verify
// side effect has already been applied to the returned slots.
func (h *ReconciliationHandler) Reconcile(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		invalidRequest(c)
		return
	}
	technicianID := c.Query("technician_id")

	result, err := h.usecase.Reconcile(c.Request.Context(), technicianID, from, to)
	if err != nil {
		log.Printf("[reconciliation][handler] pass failed technician_id=%s err=%v", technicianID, err)
		writeAppError(c, mapReconciliationError(err))
		return
	}
	if result.VerifyErr != nil {
		log.Printf("[reconciliation][handler] pass completed with verify failure technician_id=%s err=%v", technicianID, result.VerifyErr)
	}

	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

// Agree force-verifies one slot's imported records regardless of status.
func (h *ReconciliationHandler) Agree(c *gin.Context) {
	var payload request.AgreeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c)
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		invalidRequest(c)
		return
	}

	slot, err := h.usecase.Agree(c.Request.Context(), payload.TechnicianID, date)
	if err != nil {
		log.Printf("[reconciliation][handler] agree failed technician_id=%s date=%s err=%v", payload.TechnicianID, payload.Date, err)
		writeAppError(c, mapReconciliationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromSlot(slot))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlotNotFound):
		return pkg.NewDomainErrorSimple("SLOT_NOT_FOUND", "Reconciliation slot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToVerify):
		return pkg.NewDomainErrorSimple("NOTHING_TO_VERIFY", "Slot has no imported records to verify", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
