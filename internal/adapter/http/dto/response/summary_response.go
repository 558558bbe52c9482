package response

import (
	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase"
)

type TechnicianSummaryResponse struct {
	TechnicianID string `json:"technician_id"`

	TotalHours    float64 `json:"total_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	SundayHours   float64 `json:"sunday_hours"`

	DaysWorked int    `json:"days_worked"`
	LastWorked string `json:"last_worked,omitempty"`

	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

func FromTechnicianSummary(s entities.TechnicianPeriodSummary) TechnicianSummaryResponse {
	out := TechnicianSummaryResponse{
		TechnicianID:  s.TechnicianID,
		TotalHours:    s.TotalHours,
		RegularHours:  s.RegularHours,
		OvertimeHours: s.OvertimeHours,
		WeekendHours:  s.WeekendHours,
		SundayHours:   s.SundayHours,
		DaysWorked:    s.DaysWorked,
		Revenue:       s.Revenue,
		Cost:          s.Cost,
		Profit:        s.Profit,
	}
	if !s.LastWorked.IsZero() {
		out.LastWorked = s.LastWorked.Format(dateLayout)
	}
	return out
}

type SummaryListResponse struct {
	Summaries []TechnicianSummaryResponse `json:"summaries"`
	Skipped   []string                    `json:"skipped,omitempty"`
}

func FromSummaryResult(r usecase.SummaryResult) SummaryListResponse {
	out := SummaryListResponse{Summaries: make([]TechnicianSummaryResponse, 0, len(r.Summaries))}
	for _, s := range r.Summaries {
		out.Summaries = append(out.Summaries, FromTechnicianSummary(s))
	}
	for _, skip := range r.Skipped {
		out.Skipped = append(out.Skipped, skip.String())
	}
	return out
}

type WeeklySummaryResponse struct {
	WeekStart string `json:"week_start"`

	AllHours      float64 `json:"all_hours"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	WeekendHours  float64 `json:"weekend_hours"`
	SundayHours   float64 `json:"sunday_hours"`
}

func FromWeeklySummaries(weeks []entities.WeeklySummary) []WeeklySummaryResponse {
	out := make([]WeeklySummaryResponse, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeeklySummaryResponse{
			WeekStart:     w.WeekStart.Format(dateLayout),
			AllHours:      w.AllHours,
			RegularHours:  w.RegularHours,
			OvertimeHours: w.OvertimeHours,
			WeekendHours:  w.WeekendHours,
			SundayHours:   w.SundayHours,
		})
	}
	return out
}
