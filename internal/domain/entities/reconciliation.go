package entities

import "time"

// SlotStatus classifies the agreement between the manual and imported hour
// streams for one (technician, date) slot.

type SlotStatus string

const (
	SlotStatusMatch          SlotStatus = "match"
	SlotStatusDiscrepancy    SlotStatus = "discrepancy"
	SlotStatusMissingManual  SlotStatus = "missing_manual"
	SlotStatusMissingWebhook SlotStatus = "missing_webhook"
)

// ReconciliationSlot is the derived reconciliation unit keyed by
// (technician, date). It is rebuilt from scratch on every pass and never
// persisted on its own.
//
// Precedence: when any manual entry exists the manual sum is authoritative and
// the imported entries are kept only for comparison. When only imported
// entries exist their sum is authoritative but stays unverified until
// confirmed (automatically on match, or through the agree action).

type ReconciliationSlot struct {
	TechnicianID string    `json:"technician_id"`
	Date         time.Time `json:"date"`

	Manual   []WorkEntry `json:"manual"`
	Imported []WorkEntry `json:"imported"`

	ManualHours        float64 `json:"manual_hours"`
	ImportedHours      float64 `json:"imported_hours"`
	AuthoritativeHours float64 `json:"authoritative_hours"`
	// Difference is imported minus manual hours.
	Difference float64 `json:"difference"`

	Status   SlotStatus `json:"status"`
	Verified bool       `json:"verified"`
}
