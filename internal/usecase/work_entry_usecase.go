package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound = errors.New("work entry not found")
	ErrEmptyImport   = errors.New("import batch is empty")
)

// CreateEntryParams is the command for a manual work entry.
type CreateEntryParams struct {
	TechnicianID string
	CustomerID   string
	Date         time.Time
	HoursWorked  float64
	StartTime    string
	EndTime      string
	Description  string
}

// UpdateEntryParams carries the mutable fields of an entry; nil means keep.
// Changing date or hours re-runs classification.
type UpdateEntryParams struct {
	Date        *time.Time
	HoursWorked *float64
	Description *string
}

// ImportedRow is one record arriving from the external time-capture webhook.
type ImportedRow struct {
	TechnicianID string
	CustomerID   string
	Date         time.Time
	HoursWorked  float64
	StartTime    string
	EndTime      string
	Description  string
}

// ImportResult reports the stored rows and the rows dropped for bad data.
// One bad row does not fail the batch.
type ImportResult struct {
	Created []entities.WorkEntry
	Skipped []EntrySkip
}

// IWorkEntryUseCase exposes the work entry operations: manual creation and
// update by technicians/admins, the webhook import, and range listing.

type IWorkEntryUseCase interface {
	CreateManual(ctx context.Context, p CreateEntryParams) (entities.WorkEntry, error)
	Update(ctx context.Context, id string, p UpdateEntryParams) (entities.WorkEntry, error)
	Import(ctx context.Context, rows []ImportedRow) (ImportResult, error)
	ListByTechnician(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WorkEntry, error)
}

type WorkEntryUseCase struct {
	repo interfaces.IWorkEntryRepository
}

var _ IWorkEntryUseCase = (*WorkEntryUseCase)(nil)

func NewWorkEntryUseCase(repo interfaces.IWorkEntryRepository) *WorkEntryUseCase {
	return &WorkEntryUseCase{repo: repo}
}

func (u *WorkEntryUseCase) CreateManual(ctx context.Context, p CreateEntryParams) (entities.WorkEntry, error) {
	technicianID := strings.TrimSpace(p.TechnicianID)
	if technicianID == "" {
		return entities.WorkEntry{}, ErrInvalidTechnicianID
	}

	c, err := Classify(p.Date, p.HoursWorked)
	if err != nil {
		return entities.WorkEntry{}, err
	}

	now := time.Now().UTC()
	e := entities.WorkEntry{
		ID:           uuid.NewString(),
		TechnicianID: technicianID,
		CustomerID:   strings.TrimSpace(p.CustomerID),
		Date:         dateKey(p.Date),
		HoursWorked:  p.HoursWorked,
		Source:       entities.EntrySourceManual,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		Description:  p.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyClassification(&e, c)
	return u.repo.Create(ctx, e)
}

func (u *WorkEntryUseCase) Update(ctx context.Context, id string, p UpdateEntryParams) (entities.WorkEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkEntry{}, ErrEntryNotFound
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkEntry{}, err
	}
	if e.ID == "" {
		return entities.WorkEntry{}, ErrEntryNotFound
	}

	reclassify := false
	if p.Date != nil {
		e.Date = dateKey(*p.Date)
		reclassify = true
	}
	if p.HoursWorked != nil {
		e.HoursWorked = *p.HoursWorked
		reclassify = true
	}
	if p.Description != nil {
		e.Description = *p.Description
	}

	if reclassify {
		c, err := Classify(e.Date, e.HoursWorked)
		if err != nil {
			return entities.WorkEntry{}, err
		}
		applyClassification(&e, c)
	}

	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *WorkEntryUseCase) Import(ctx context.Context, rows []ImportedRow) (ImportResult, error) {
	if len(rows) == 0 {
		return ImportResult{}, ErrEmptyImport
	}

	var result ImportResult
	for i, row := range rows {
		technicianID := strings.TrimSpace(row.TechnicianID)
		if technicianID == "" {
			result.Skipped = append(result.Skipped, EntrySkip{Err: ErrInvalidTechnicianID})
			continue
		}
		c, err := Classify(row.Date, row.HoursWorked)
		if err != nil {
			result.Skipped = append(result.Skipped, EntrySkip{Err: err})
			continue
		}

		now := time.Now().UTC()
		e := entities.WorkEntry{
			ID:           uuid.NewString(),
			TechnicianID: technicianID,
			CustomerID:   strings.TrimSpace(row.CustomerID),
			Date:         dateKey(row.Date),
			HoursWorked:  row.HoursWorked,
			Source:       entities.EntrySourceImported,
			StartTime:    row.StartTime,
			EndTime:      row.EndTime,
			Description:  row.Description,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		applyClassification(&e, c)

		created, err := u.repo.Create(ctx, e)
		if err != nil {
			log.Printf("[entry][usecase] import row failed index=%d technician_id=%s err=%v", i, technicianID, err)
			return result, err
		}
		result.Created = append(result.Created, created)
	}

	log.Printf("[entry][usecase] import done created=%d skipped=%d", len(result.Created), len(result.Skipped))
	return result, nil
}

func (u *WorkEntryUseCase) ListByTechnician(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WorkEntry, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListByTechnicianAndRange(ctx, technicianID, dateKey(from), dateKey(to))
}
