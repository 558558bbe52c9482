package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "fieldhours/internal/adapter/http/dto/request"
	response "fieldhours/internal/adapter/http/dto/response"
	"fieldhours/internal/usecase"
	"fieldhours/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEntryPayload = pkg.NewDomainErrorSimple("INVALID_ENTRY_INPUT", "Invalid work entry payload", http.StatusBadRequest)

// WorkEntryHandler handles HTTP requests for work entries: manual creation
// and update, the webhook import batch, and range listing.

type WorkEntryHandler struct {
	usecase usecase.IWorkEntryUseCase
}

func NewWorkEntryHandler(uc usecase.IWorkEntryUseCase) *WorkEntryHandler {
	return &WorkEntryHandler{usecase: uc}
}

// CreateEntry records one manual work entry; hours are classified into
// calendar buckets before persisting.
func (h *WorkEntryHandler) CreateEntry(c *gin.Context) {
	var payload request.CreateEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidEntryPayload)
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		writeAppError(c, errInvalidEntryPayload)
		return
	}

	entry, err := h.usecase.CreateManual(c.Request.Context(), usecase.CreateEntryParams{
		TechnicianID: payload.TechnicianID,
		CustomerID:   payload.CustomerID,
		Date:         date,
		HoursWorked:  payload.HoursWorked,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		Description:  payload.Description,
	})
	if err != nil {
		writeAppError(c, mapWorkEntryError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkEntry(entry))
}

// UpdateEntry mutates hours, date or description of one entry and
// re-classifies its buckets when date or hours changed.
func (h *WorkEntryHandler) UpdateEntry(c *gin.Context) {
	var payload request.UpdateEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidEntryPayload)
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		writeAppError(c, errInvalidEntryPayload)
		return
	}

	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateEntryParams{
		Date:        date,
		HoursWorked: payload.HoursWorked,
		Description: payload.Description,
	})
	if err != nil {
		writeAppError(c, mapWorkEntryError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkEntry(entry))
}

// ImportEntries ingests a batch of rows from the external time-capture
// integration. Rows failing validation are skipped and reported.
func (h *WorkEntryHandler) ImportEntries(c *gin.Context) {
	var payload request.ImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidEntryPayload)
		return
	}

	rows := make([]usecase.ImportedRow, 0, len(payload.Entries))
	for _, e := range payload.Entries {
		date, err := e.ResolveDate()
		if err != nil {
			// Bad dates surface as skipped rows, not a failed batch.
			date = time.Time{}
		}
		rows = append(rows, usecase.ImportedRow{
			TechnicianID: e.TechnicianID,
			CustomerID:   e.CustomerID,
			Date:         date,
			HoursWorked:  e.HoursWorked,
			StartTime:    e.StartTime,
			EndTime:      e.EndTime,
			Description:  e.Description,
		})
	}

	result, err := h.usecase.Import(c.Request.Context(), rows)
	if err != nil {
		log.Printf("[entry][handler] import failed rows=%d err=%v", len(rows), err)
		writeAppError(c, mapWorkEntryError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromImportResult(result))
}

// ListEntries returns a technician's entries in a date range.
func (h *WorkEntryHandler) ListEntries(c *gin.Context) {
	from, to, err := rangeFromQuery(c)
	if err != nil {
		invalidRequest(c)
		return
	}

	entries, err := h.usecase.ListByTechnician(c.Request.Context(), c.Query("technician_id"), from, to)
	if err != nil {
		writeAppError(c, mapWorkEntryError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromWorkEntries(entries))
}

func mapWorkEntryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidHours),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrEmptyImport):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Work entry not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
