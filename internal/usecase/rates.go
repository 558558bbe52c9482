package usecase

import "fieldhours/internal/domain/entities"

// ResolvedRates is the effective hourly rate set for one technician with the
// Saturday/Sunday defaults already synthesized.
type ResolvedRates struct {
	Hourly   float64
	Billable float64
	Saturday float64
	Sunday   float64
}

// ResolvedTravel is the effective daily travel pair for one
// (customer, technician) combination.
type ResolvedTravel struct {
	ToTechnician float64
	FromClient   float64
}

// RateBook indexes rate agreements by technician for one pass. Built once per
// pass from a single fetch and passed by reference into pricing.
type RateBook struct {
	byTechnician map[string]entities.RateAgreement
}

func NewRateBook(agreements []entities.RateAgreement) *RateBook {
	b := &RateBook{byTechnician: make(map[string]entities.RateAgreement, len(agreements))}
	for _, a := range agreements {
		b.byTechnician[a.TechnicianID] = a
	}
	return b
}

// Resolve returns the technician's effective rates. An unset Saturday rate
// defaults to hourly×1.5 and an unset Sunday rate to hourly×2. A technician
// without an agreement resolves to all zeros: missing rate data is a
// business-data-quality gap, not a system fault, and must never fail a pass.
func (b *RateBook) Resolve(technicianID string) ResolvedRates {
	a, ok := b.byTechnician[technicianID]
	if !ok {
		return ResolvedRates{}
	}

	r := ResolvedRates{
		Hourly:   a.HourlyRate,
		Billable: a.BillableRate,
		Saturday: a.HourlyRate * 1.5,
		Sunday:   a.HourlyRate * 2,
	}
	if a.SaturdayRate != nil {
		r.Saturday = *a.SaturdayRate
	}
	if a.SundayRate != nil {
		r.Sunday = *a.SundayRate
	}
	return r
}

type travelKey struct {
	customerID   string
	technicianID string
}

// TravelBook indexes travel agreements by their exact (customer, technician)
// pair. There is no fallback hierarchy: a missing pair resolves to zero.
type TravelBook struct {
	byPair map[travelKey]entities.TravelAgreement
}

func NewTravelBook(agreements []entities.TravelAgreement) *TravelBook {
	b := &TravelBook{byPair: make(map[travelKey]entities.TravelAgreement, len(agreements))}
	for _, a := range agreements {
		b.byPair[travelKey{customerID: a.CustomerID, technicianID: a.TechnicianID}] = a
	}
	return b
}

func (b *TravelBook) Resolve(customerID, technicianID string) ResolvedTravel {
	a, ok := b.byPair[travelKey{customerID: customerID, technicianID: technicianID}]
	if !ok {
		return ResolvedTravel{}
	}
	return ResolvedTravel{ToTechnician: a.ToTechnician, FromClient: a.FromClient}
}
