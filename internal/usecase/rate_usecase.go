package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidRate       = errors.New("rates must be greater than zero")
	ErrInvalidTravel     = errors.New("travel amounts must not be negative")
	ErrRateNotFound      = errors.New("rate agreement not found")
)

// IRateUseCase covers the admin configuration surface: upserting technician
// rate agreements and (customer, technician) travel agreements.

type IRateUseCase interface {
	UpsertRateAgreement(ctx context.Context, a entities.RateAgreement) (entities.RateAgreement, error)
	GetRateAgreement(ctx context.Context, technicianID string) (entities.RateAgreement, error)
	UpsertTravelAgreement(ctx context.Context, a entities.TravelAgreement) (entities.TravelAgreement, error)
}

type RateUseCase struct {
	rates  interfaces.IRateAgreementRepository
	travel interfaces.ITravelAgreementRepository
}

var _ IRateUseCase = (*RateUseCase)(nil)

func NewRateUseCase(rates interfaces.IRateAgreementRepository, travel interfaces.ITravelAgreementRepository) *RateUseCase {
	return &RateUseCase{rates: rates, travel: travel}
}

func (u *RateUseCase) UpsertRateAgreement(ctx context.Context, a entities.RateAgreement) (entities.RateAgreement, error) {
	a.TechnicianID = strings.TrimSpace(a.TechnicianID)
	if a.TechnicianID == "" {
		return entities.RateAgreement{}, ErrInvalidTechnicianID
	}
	if a.HourlyRate <= 0 || a.BillableRate <= 0 {
		return entities.RateAgreement{}, ErrInvalidRate
	}
	if a.SaturdayRate != nil && *a.SaturdayRate <= 0 {
		return entities.RateAgreement{}, ErrInvalidRate
	}
	if a.SundayRate != nil && *a.SundayRate <= 0 {
		return entities.RateAgreement{}, ErrInvalidRate
	}

	a.UpdatedAt = time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = a.UpdatedAt
	}
	return u.rates.Upsert(ctx, a)
}

func (u *RateUseCase) GetRateAgreement(ctx context.Context, technicianID string) (entities.RateAgreement, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.RateAgreement{}, ErrInvalidTechnicianID
	}

	a, err := u.rates.GetByTechnicianID(ctx, technicianID)
	if err != nil {
		return entities.RateAgreement{}, err
	}
	if a.TechnicianID == "" {
		return entities.RateAgreement{}, ErrRateNotFound
	}
	return a, nil
}

func (u *RateUseCase) UpsertTravelAgreement(ctx context.Context, a entities.TravelAgreement) (entities.TravelAgreement, error) {
	a.CustomerID = strings.TrimSpace(a.CustomerID)
	a.TechnicianID = strings.TrimSpace(a.TechnicianID)
	if a.CustomerID == "" {
		return entities.TravelAgreement{}, ErrInvalidCustomerID
	}
	if a.TechnicianID == "" {
		return entities.TravelAgreement{}, ErrInvalidTechnicianID
	}
	if a.ToTechnician < 0 || a.FromClient < 0 {
		return entities.TravelAgreement{}, ErrInvalidTravel
	}

	a.UpdatedAt = time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = a.UpdatedAt
	}
	return u.travel.Upsert(ctx, a)
}
