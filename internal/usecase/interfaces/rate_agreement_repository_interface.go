package interfaces

import (
	"context"

	"fieldhours/internal/domain/entities"
)

// IRateAgreementRepository abstracts DynamoDB persistence for RateAgreement.
// One agreement per technician, upserted by admins.

type IRateAgreementRepository interface {
	Upsert(ctx context.Context, a entities.RateAgreement) (entities.RateAgreement, error)
	GetByTechnicianID(ctx context.Context, technicianID string) (entities.RateAgreement, error)
	ListAll(ctx context.Context) ([]entities.RateAgreement, error)
}
