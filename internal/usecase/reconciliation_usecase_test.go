package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldhours/internal/domain/entities"
	mock_interfaces "fieldhours/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	t.Run("invalid technician id", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil)
		_, err := uc.Reconcile(context.Background(), "   ", monday, sunday)
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("invalid range", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil)
		if _, err := uc.Reconcile(context.Background(), "tech-1", sunday, monday); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if _, err := uc.Reconcile(context.Background(), "tech-1", time.Time{}, sunday); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("fetch failure aborts the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).
			Return(nil, errors.New("db"))

		res, err := uc.Reconcile(context.Background(), "tech-1", monday, sunday)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if len(res.Slots) != 0 {
			t.Fatalf("expected no partial slot set, got %+v", res.Slots)
		}
	})

	t.Run("auto-verify runs once for a match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		first := []entities.WorkEntry{
			manualEntry("m1", friday, 8),
			importedEntry("i1", friday, 8, false),
		}
		// After the first pass the imported record is verified in storage.
		second := []entities.WorkEntry{
			manualEntry("m1", friday, 8),
			importedEntry("i1", friday, 8, true),
		}

		gomock.InOrder(
			repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).Return(first, nil),
			repo.EXPECT().MarkVerified(gomock.Any(), []string{"i1"}).Return(nil),
			repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).Return(second, nil),
		)

		res, err := uc.Reconcile(context.Background(), "tech-1", monday, sunday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.VerifyErr != nil {
			t.Fatalf("unexpected verify error: %v", res.VerifyErr)
		}
		if len(res.Slots) != 1 || !res.Slots[0].Verified {
			t.Fatalf("match slot must come back verified: %+v", res.Slots)
		}

		// Second identical pass: no MarkVerified expectation remains, so any
		// write here fails the test.
		res, err = uc.Reconcile(context.Background(), "tech-1", monday, sunday)
		if err != nil {
			t.Fatalf("unexpected error on second pass: %v", err)
		}
		if !res.Slots[0].Verified {
			t.Fatalf("expected slot still verified on second pass")
		}
	})

	t.Run("discrepancy is never auto-verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).Return([]entities.WorkEntry{
			manualEntry("m1", friday, 6),
			importedEntry("i1", friday, 8, false),
		}, nil)

		res, err := uc.Reconcile(context.Background(), "tech-1", monday, sunday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Slots[0].Status != entities.SlotStatusDiscrepancy || res.Slots[0].Verified {
			t.Fatalf("unexpected slot: %+v", res.Slots[0])
		}
	})

	t.Run("verify write failure is reported, slots stay unverified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).Return([]entities.WorkEntry{
			manualEntry("m1", friday, 8),
			importedEntry("i1", friday, 8, false),
		}, nil)
		repo.EXPECT().MarkVerified(gomock.Any(), []string{"i1"}).Return(errors.New("write failed"))

		res, err := uc.Reconcile(context.Background(), "tech-1", monday, sunday)
		if err != nil {
			t.Fatalf("pass itself must succeed, got %v", err)
		}
		if res.VerifyErr == nil || res.VerifyErr.Error() != "write failed" {
			t.Fatalf("expected verify error, got %v", res.VerifyErr)
		}
		if res.Slots[0].Verified {
			t.Fatalf("slot must stay unverified when the write fails")
		}
	})
}

func TestReconciliationUseCase_Agree(t *testing.T) {
	t.Run("invalid inputs", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil)
		if _, err := uc.Agree(context.Background(), "", friday); !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
		if _, err := uc.Agree(context.Background(), "tech-1", time.Time{}); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("no entries for the day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", friday, friday).Return(nil, nil)

		if _, err := uc.Agree(context.Background(), "tech-1", friday); !errors.Is(err, ErrSlotNotFound) {
			t.Fatalf("expected ErrSlotNotFound, got %v", err)
		}
	})

	t.Run("manual-only slot has nothing to verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", friday, friday).
			Return([]entities.WorkEntry{manualEntry("m1", friday, 6)}, nil)

		if _, err := uc.Agree(context.Background(), "tech-1", friday); !errors.Is(err, ErrNothingToVerify) {
			t.Fatalf("expected ErrNothingToVerify, got %v", err)
		}
	})

	t.Run("force-verifies a discrepancy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", friday, friday).Return([]entities.WorkEntry{
			manualEntry("m1", friday, 6),
			importedEntry("i1", friday, 8, false),
		}, nil)
		repo.EXPECT().MarkVerified(gomock.Any(), []string{"i1"}).Return(nil)

		slot, err := uc.Agree(context.Background(), "tech-1", friday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slot.Status != entities.SlotStatusDiscrepancy {
			t.Fatalf("agree must not rewrite the status, got %s", slot.Status)
		}
		if !slot.Verified {
			t.Fatalf("expected slot verified after agree")
		}
		if slot.AuthoritativeHours != 6 {
			t.Fatalf("manual hours still authoritative, got %v", slot.AuthoritativeHours)
		}
	})

	t.Run("idempotent when everything is already verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", friday, friday).
			Return([]entities.WorkEntry{importedEntry("i1", friday, 8, true)}, nil)

		slot, err := uc.Agree(context.Background(), "tech-1", friday)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slot.Verified {
			t.Fatalf("expected verified slot")
		}
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewReconciliationUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", friday, friday).
			Return([]entities.WorkEntry{importedEntry("i1", friday, 8, false)}, nil)
		repo.EXPECT().MarkVerified(gomock.Any(), []string{"i1"}).Return(errors.New("write failed"))

		if _, err := uc.Agree(context.Background(), "tech-1", friday); err == nil || err.Error() != "write failed" {
			t.Fatalf("expected write failure, got %v", err)
		}
	})
}
