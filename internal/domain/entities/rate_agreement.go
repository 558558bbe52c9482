package entities

import "time"

// RateAgreement is the per-technician pay/bill configuration.
//
// Storage model (DynamoDB):
//   - PK: technician_id (one agreement per technician)
//
// SaturdayRate and SundayRate are optional; when nil the resolver synthesizes
// hourly×1.5 and hourly×2. A technician without any agreement resolves to
// all-zero rates, which under- or over-reports money but never fails a pass.

type RateAgreement struct {
	TechnicianID string    `json:"technician_id"`
	HourlyRate   float64   `json:"hourly_rate"`
	BillableRate float64   `json:"billable_rate"`
	SaturdayRate *float64  `json:"saturday_rate,omitempty"`
	SundayRate   *float64  `json:"sunday_rate,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TravelAgreement is the fixed daily travel expense pair for one
// (customer, technician) combination.
//
// Storage model (DynamoDB):
//   - PK: customer_id, SK: technician_id (unique per pair)
//
// Amounts are attributed once per unique technician+date+customer, never per
// entry; the aggregation layer owns that dedup.

type TravelAgreement struct {
	CustomerID   string    `json:"customer_id"`
	TechnicianID string    `json:"technician_id"`
	ToTechnician float64   `json:"travel_expense_to_technician"`
	FromClient   float64   `json:"travel_expense_from_client"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
