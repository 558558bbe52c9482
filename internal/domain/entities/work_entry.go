package entities

import "time"

// EntrySource tells which stream a work entry arrived from.
//
// Domain notes:
//   - Manual entries are typed in by a technician or an admin.
//   - Imported entries arrive from the external time-capture webhook and stay
//     unverified until confirmed against manual hours.

type EntrySource string

const (
	EntrySourceManual   EntrySource = "manual"
	EntrySourceImported EntrySource = "imported"
)

// WorkEntry is one recorded stretch of work, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-date-index): technician_id / date
//
// Hour buckets:
//   - RegularHours+OvertimeHours+WeekendHours+SundayHours == HoursWorked.
//   - A single entry belongs to exactly one day kind (weekday, Saturday or Sunday),
//     so at most one of the weekend/Sunday buckets is ever non-zero.
//   - Buckets are recomputed whenever Date or HoursWorked change; the reconciliation
//     pass never edits raw entries, it only selects and merges them.

type WorkEntry struct {
	ID           string      `json:"id"`
	TechnicianID string      `json:"technician_id"`
	CustomerID   string      `json:"customer_id,omitempty"`
	Date         time.Time   `json:"date"`
	HoursWorked  float64     `json:"hours_worked"`
	Source       EntrySource `json:"source"`
	Verified     bool        `json:"verified"`

	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Description string `json:"description,omitempty"`

	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	SundayHours   float64 `json:"sunday_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
