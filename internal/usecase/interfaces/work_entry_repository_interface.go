package interfaces

import (
	"context"
	"time"

	"fieldhours/internal/domain/entities"
)

// IWorkEntryRepository abstracts DynamoDB persistence for WorkEntry.
//
// Reconciliation and aggregation passes must fetch their entry set in a single
// range call per pass (no per-row round trips); MarkVerified is the verify-write
// port used by auto-verify and the manual agree action.

type IWorkEntryRepository interface {
	Create(ctx context.Context, e entities.WorkEntry) (entities.WorkEntry, error)
	GetByID(ctx context.Context, id string) (entities.WorkEntry, error)
	Update(ctx context.Context, e entities.WorkEntry) (entities.WorkEntry, error)
	ListByTechnicianAndRange(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WorkEntry, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]entities.WorkEntry, error)
	MarkVerified(ctx context.Context, ids []string) error
}
