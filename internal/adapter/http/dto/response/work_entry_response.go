package response

import (
	"time"

	"fieldhours/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type WorkEntryResponse struct {
	ID           string  `json:"id"`
	TechnicianID string  `json:"technician_id"`
	CustomerID   string  `json:"customer_id,omitempty"`
	Date         string  `json:"date"`
	HoursWorked  float64 `json:"hours_worked"`
	Source       string  `json:"source"`
	Verified     bool    `json:"verified"`

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

func FromWorkEntry(e entities.WorkEntry) WorkEntryResponse {
	return WorkEntryResponse{
		ID:            e.ID,
		TechnicianID:  e.TechnicianID,
		CustomerID:    e.CustomerID,
		Date:          e.Date.Format(dateLayout),
		HoursWorked:   e.HoursWorked,
		Source:        string(e.Source),
		Verified:      e.Verified,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Description:   e.Description,
		RegularHours:  e.RegularHours,
		OvertimeHours: e.OvertimeHours,
		WeekendHours:  e.WeekendHours,
		SundayHours:   e.SundayHours,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func FromWorkEntries(entries []entities.WorkEntry) []WorkEntryResponse {
	out := make([]WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromWorkEntry(e))
	}
	return out
}
