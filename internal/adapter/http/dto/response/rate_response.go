package response

import (
	"time"

	"fieldhours/internal/domain/entities"
)

type RateAgreementResponse struct {
	TechnicianID string    `json:"technician_id"`
	HourlyRate   float64   `json:"hourly_rate"`
	BillableRate float64   `json:"billable_rate"`
	SaturdayRate *float64  `json:"saturday_rate,omitempty"`
	SundayRate   *float64  `json:"sunday_rate,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRateAgreement(a entities.RateAgreement) RateAgreementResponse {
	return RateAgreementResponse{
		TechnicianID: a.TechnicianID,
		HourlyRate:   a.HourlyRate,
		BillableRate: a.BillableRate,
		SaturdayRate: a.SaturdayRate,
		SundayRate:   a.SundayRate,
		UpdatedAt:    a.UpdatedAt,
	}
}

type TravelAgreementResponse struct {
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id"`
	ToTechnician float64   `json:"travel_expense_to_technician"`
	FromClient   float64   `json:"travel_expense_from_client"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromTravelAgreement(a entities.TravelAgreement) TravelAgreementResponse {
	return TravelAgreementResponse{
		CustomerID:   a.CustomerID,
		TechnicianID: a.TechnicianID,
		ToTechnician: a.ToTechnician,
		FromClient:   a.FromClient,
		UpdatedAt:    a.UpdatedAt,
	}
}
