package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"
)

var (
	ErrInvalidTechnicianID = errors.New("invalid technician id")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrSlotNotFound        = errors.New("reconciliation slot not found")
	ErrNothingToVerify     = errors.New("slot has no imported records to verify")
)

// IReconciliationUseCase runs reconciliation passes over the manual and
// imported hour streams and exposes the manual agree override.
//
// A pass is recomputed from scratch each time. Its only side effect is the
// auto-verify write: every match slot with unverified imported records gets
// those records marked verified before the result is returned, so a caller
// never observes a match slot still reporting verified=false. Running the same
// pass twice over unchanged data performs no second write.

type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, technicianID string, from, to time.Time) (ReconcileResult, error)
	Agree(ctx context.Context, technicianID string, date time.Time) (entities.ReconciliationSlot, error)
}

// ReconcileResult is the typed outcome of one pass. VerifyErr reports a failed
// auto-verify write; the affected slots keep verified=false because storage is
// the source of truth for the flag, but the computed slot set stays valid.
type ReconcileResult struct {
	Slots     []entities.ReconciliationSlot
	Skipped   []EntrySkip
	VerifyErr error
}

type ReconciliationUseCase struct {
	entries interfaces.IWorkEntryRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(entries interfaces.IWorkEntryRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{entries: entries}
}

func (u *ReconciliationUseCase) Reconcile(ctx context.Context, technicianID string, from, to time.Time) (ReconcileResult, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return ReconcileResult{}, ErrInvalidTechnicianID
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return ReconcileResult{}, ErrInvalidDateRange
	}

	// Single fetch per pass; a failed fetch aborts atomically with no
	// partial slot set.
	entries, err := u.entries.ListByTechnicianAndRange(ctx, technicianID, dateKey(from), dateKey(to))
	if err != nil {
		return ReconcileResult{}, err
	}

	slots, skipped := BuildSlots(entries)
	result := ReconcileResult{Slots: slots, Skipped: skipped}
	result.VerifyErr = u.autoVerify(ctx, result.Slots)
	return result, nil
}

// autoVerify marks the imported records of every match slot verified and
// updates the in-memory slots to match. Only records whose flag is still false
// are written, which keeps repeated passes write-free.
func (u *ReconciliationUseCase) autoVerify(ctx context.Context, slots []entities.ReconciliationSlot) error {
	var pending []string
	var pendingSlots []int

	for i, slot := range slots {
		if slot.Status != entities.SlotStatusMatch || slot.Verified {
			continue
		}
		ids := unverifiedImportedIDs(slot)
		if len(ids) == 0 {
			continue
		}
		pending = append(pending, ids...)
		pendingSlots = append(pendingSlots, i)
	}
	if len(pending) == 0 {
		return nil
	}

	if err := u.entries.MarkVerified(ctx, pending); err != nil {
		log.Printf("[reconciliation][usecase] auto-verify write failed ids=%d err=%v", len(pending), err)
		return err
	}

	for _, i := range pendingSlots {
		markSlotVerified(&slots[i])
	}
	log.Printf("[reconciliation][usecase] auto-verified slots=%d records=%d", len(pendingSlots), len(pending))
	return nil
}

// Agree force-verifies one slot's imported records regardless of its status.
// The human is asserting the imported number is correct even when it mismatches
// the manual hours or no manual entry exists.
func (u *ReconciliationUseCase) Agree(ctx context.Context, technicianID string, date time.Time) (entities.ReconciliationSlot, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.ReconciliationSlot{}, ErrInvalidTechnicianID
	}
	if date.IsZero() {
		return entities.ReconciliationSlot{}, ErrInvalidDate
	}

	day := dateKey(date)
	entries, err := u.entries.ListByTechnicianAndRange(ctx, technicianID, day, day)
	if err != nil {
		return entities.ReconciliationSlot{}, err
	}

	slots, _ := BuildSlots(entries)
	var slot *entities.ReconciliationSlot
	for i := range slots {
		if slots[i].Date.Equal(day) {
			slot = &slots[i]
			break
		}
	}
	if slot == nil {
		return entities.ReconciliationSlot{}, ErrSlotNotFound
	}
	if len(slot.Imported) == 0 {
		return entities.ReconciliationSlot{}, ErrNothingToVerify
	}

	if ids := unverifiedImportedIDs(*slot); len(ids) > 0 {
		if err := u.entries.MarkVerified(ctx, ids); err != nil {
			log.Printf("[reconciliation][usecase] agree write failed technician_id=%s date=%s err=%v", technicianID, day.Format("2006-01-02"), err)
			return entities.ReconciliationSlot{}, err
		}
	}

	markSlotVerified(slot)
	log.Printf("[reconciliation][usecase] agree success technician_id=%s date=%s status=%s", technicianID, day.Format("2006-01-02"), slot.Status)
	return *slot, nil
}

func unverifiedImportedIDs(slot entities.ReconciliationSlot) []string {
	var ids []string
	for _, e := range slot.Imported {
		if !e.Verified {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func markSlotVerified(slot *entities.ReconciliationSlot) {
	for i := range slot.Imported {
		slot.Imported[i].Verified = true
	}
	slot.Verified = true
}
