package response

import (
	"errors"
	"testing"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase"
)

func TestFromSlot(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	slot := entities.ReconciliationSlot{
		TechnicianID: "tech-1",
		Date:         day,
		Manual: []entities.WorkEntry{
			{ID: "m1", TechnicianID: "tech-1", Date: day, HoursWorked: 6, Source: entities.EntrySourceManual},
		},
		Imported: []entities.WorkEntry{
			{ID: "i1", TechnicianID: "tech-1", Date: day, HoursWorked: 8, Source: entities.EntrySourceImported},
		},
		ManualHours:        6,
		ImportedHours:      8,
		AuthoritativeHours: 6,
		Difference:         2,
		Status:             entities.SlotStatusDiscrepancy,
	}

	res := FromSlot(slot)
	if res.TechnicianID != "tech-1" || res.Date != "2026-08-28" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if len(res.Manual) != 1 || len(res.Imported) != 1 {
		t.Fatalf("unexpected entry lists: %+v", res)
	}
	if res.AuthoritativeHours != 6 || res.Difference != 2 {
		t.Fatalf("unexpected hours: %+v", res)
	}
	if res.Status != "discrepancy" || res.Verified {
		t.Fatalf("unexpected status fields: %+v", res)
	}
}

func TestFromReconcileResult(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	res := FromReconcileResult(usecase.ReconcileResult{
		Slots: []entities.ReconciliationSlot{
			{TechnicianID: "tech-1", Date: day, Status: entities.SlotStatusMatch, Verified: true},
		},
		Skipped:   []usecase.EntrySkip{{EntryID: "bad", Err: usecase.ErrInvalidHours}},
		VerifyErr: errors.New("write failed"),
	})

	if len(res.Slots) != 1 || res.Slots[0].Status != "match" {
		t.Fatalf("unexpected slots: %+v", res)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped row, got %+v", res.Skipped)
	}
	if res.VerifyError != "write failed" {
		t.Fatalf("unexpected verify error: %q", res.VerifyError)
	}
}

func TestFromWorkEntry(t *testing.T) {
	now := time.Now().UTC()
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	e := entities.WorkEntry{
		ID:           "e1",
		TechnicianID: "tech-1",
		CustomerID:   "cust-1",
		Date:         day,
		HoursWorked:  3,
		Source:       entities.EntrySourceManual,
		SundayHours:  3,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromWorkEntry(e)
	if res.ID != "e1" || res.Date != "2026-08-30" || res.Source != "manual" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SundayHours != 3 || res.RegularHours != 0 {
		t.Fatalf("unexpected buckets: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
