package request

import "fieldhours/internal/domain/entities"

// RateAgreementRequest is the admin upsert payload for a technician's rates.
// Saturday and Sunday rates are optional; the resolver synthesizes hourly×1.5
// and hourly×2 when they are omitted.
type RateAgreementRequest struct {
	TechnicianID string   `json:"technician_id" binding:"required"`
	HourlyRate   float64  `json:"hourly_rate" binding:"required"`
	BillableRate float64  `json:"billable_rate" binding:"required"`
	SaturdayRate *float64 `json:"saturday_rate"`
	SundayRate   *float64 `json:"sunday_rate"`
}

func (r RateAgreementRequest) ToEntity() entities.RateAgreement {
	return entities.RateAgreement{
		TechnicianID: r.TechnicianID,
		HourlyRate:   r.HourlyRate,
		BillableRate: r.BillableRate,
		SaturdayRate: r.SaturdayRate,
		SundayRate:   r.SundayRate,
	}
}

// TravelAgreementRequest is the admin upsert payload for one
// (customer, technician) travel expense pair.
type TravelAgreementRequest struct {
	CustomerID   string  `json:"customer_id" binding:"required"`
	TechnicianID string  `json:"technician_id" binding:"required"`
	ToTechnician float64 `json:"travel_expense_to_technician"`
	FromClient   float64 `json:"travel_expense_from_client"`
}

func (r TravelAgreementRequest) ToEntity() entities.TravelAgreement {
	return entities.TravelAgreement{
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		ToTechnician: r.ToTechnician,
		FromClient:   r.FromClient,
	}
}
