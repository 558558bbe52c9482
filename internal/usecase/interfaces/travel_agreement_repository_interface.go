package interfaces

import (
	"context"

	"fieldhours/internal/domain/entities"
)

// ITravelAgreementRepository abstracts DynamoDB persistence for
// TravelAgreement, unique on the exact (customer, technician) pair.

type ITravelAgreementRepository interface {
	Upsert(ctx context.Context, a entities.TravelAgreement) (entities.TravelAgreement, error)
	GetByPair(ctx context.Context, customerID, technicianID string) (entities.TravelAgreement, error)
	ListAll(ctx context.Context) ([]entities.TravelAgreement, error)
}
