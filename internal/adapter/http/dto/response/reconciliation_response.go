package response

import (
	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase"
)

type SlotResponse struct {
	TechnicianID string `json:"technician_id"`
	Date         string `json:"date"`

	Manual   []WorkEntryResponse `json:"manual"`
	Imported []WorkEntryResponse `json:"imported"`

	ManualHours        float64 `json:"manual_hours"`
	ImportedHours      float64 `json:"imported_hours"`
	AuthoritativeHours float64 `json:"authoritative_hours"`
	Difference         float64 `json:"difference"`

	Status   string `json:"status"`
	Verified bool   `json:"verified"`
}

func FromSlot(s entities.ReconciliationSlot) SlotResponse {
	return SlotResponse{
		TechnicianID:       s.TechnicianID,
		Date:               s.Date.Format(dateLayout),
		Manual:             FromWorkEntries(s.Manual),
		Imported:           FromWorkEntries(s.Imported),
		ManualHours:        s.ManualHours,
		ImportedHours:      s.ImportedHours,
		AuthoritativeHours: s.AuthoritativeHours,
		Difference:         s.Difference,
		Status:             string(s.Status),
		Verified:           s.Verified,
	}
}

// ReconcileResponse is the outcome of one reconciliation pass. Skipped rows
// and a failed verify-write are reported alongside the slots so the UI can
// show a warning banner instead of failing the whole view.
type ReconcileResponse struct {
	Slots       []SlotResponse `json:"slots"`
	Skipped     []string       `json:"skipped,omitempty"`
	VerifyError string         `json:"verify_error,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	out := ReconcileResponse{Slots: make([]SlotResponse, 0, len(r.Slots))}
	for _, s := range r.Slots {
		out.Slots = append(out.Slots, FromSlot(s))
	}
	for _, skip := range r.Skipped {
		out.Skipped = append(out.Skipped, skip.String())
	}
	if r.VerifyErr != nil {
		out.VerifyError = r.VerifyErr.Error()
	}
	return out
}
