package entities

import "time"

// TechnicianPeriodSummary is the derived, read-only per-technician rollup for
// a reporting period. It is recomputed on demand from work entries plus the
// rate and travel agreements and never persisted.

type TechnicianPeriodSummary struct {
	TechnicianID string `json:"technician_id"`

	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	SundayHours   float64 `json:"sunday_hours"`

	DaysWorked int       `json:"days_worked"`
	LastWorked time.Time `json:"last_worked"`

	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// WeeklySummary buckets classified hours by the Monday of each entry's week.

type WeeklySummary struct {
	WeekStart time.Time `json:"week_start"`

	AllHours      float64 `json:"all_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	SundayHours   float64 `json:"sunday_hours"`
}
