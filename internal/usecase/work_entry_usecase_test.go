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

func TestWorkEntryUseCase_CreateManual(t *testing.T) {
	t.Run("invalid technician id", func(t *testing.T) {
		uc := NewWorkEntryUseCase(nil)
		_, err := uc.CreateManual(context.Background(), CreateEntryParams{TechnicianID: "  ", Date: friday, HoursWorked: 8})
		if !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
	})

	t.Run("invalid hours", func(t *testing.T) {
		uc := NewWorkEntryUseCase(nil)
		_, err := uc.CreateManual(context.Background(), CreateEntryParams{TechnicianID: "tech-1", Date: friday, HoursWorked: 0})
		if !errors.Is(err, ErrInvalidHours) {
			t.Fatalf("expected ErrInvalidHours, got %v", err)
		}
	})

	t.Run("success classifies and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkEntry{})).DoAndReturn(
			func(_ context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
				if e.ID == "" || e.TechnicianID != "tech-1" || e.Source != entities.EntrySourceManual {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.RegularHours != 8 || e.OvertimeHours != 2 {
					t.Fatalf("expected 10h split 8/2, got %+v", e)
				}
				if !e.Date.Equal(friday) {
					t.Fatalf("expected date normalized to %v, got %v", friday, e.Date)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CreateManual(context.Background(), CreateEntryParams{
			TechnicianID: " tech-1 ",
			CustomerID:   "cust-1",
			Date:         friday.Add(9 * time.Hour),
			HoursWorked:  10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkEntryUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.WorkEntry{}, nil)

		if _, err := uc.Update(context.Background(), "missing", UpdateEntryParams{}); !errors.Is(err, ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("hours change reclassifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		existing := manualEntry("e1", friday, 6)
		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkEntry{})).DoAndReturn(
			func(_ context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
				if e.HoursWorked != 10 || e.RegularHours != 8 || e.OvertimeHours != 2 {
					t.Fatalf("expected reclassified 8/2, got %+v", e)
				}
				return e, nil
			},
		)

		hours := 10.0
		if _, err := uc.Update(context.Background(), "e1", UpdateEntryParams{HoursWorked: &hours}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("date move to sunday rebuckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		existing := manualEntry("e1", friday, 6)
		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkEntry{})).DoAndReturn(
			func(_ context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
				if e.SundayHours != 6 || e.RegularHours != 0 {
					t.Fatalf("expected sunday bucket, got %+v", e)
				}
				return e, nil
			},
		)

		d := sunday
		if _, err := uc.Update(context.Background(), "e1", UpdateEntryParams{Date: &d}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid new hours rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(manualEntry("e1", friday, 6), nil)

		hours := 25.0
		if _, err := uc.Update(context.Background(), "e1", UpdateEntryParams{HoursWorked: &hours}); !errors.Is(err, ErrInvalidHours) {
			t.Fatalf("expected ErrInvalidHours, got %v", err)
		}
	})
}

func TestWorkEntryUseCase_Import(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc := NewWorkEntryUseCase(nil)
		if _, err := uc.Import(context.Background(), nil); !errors.Is(err, ErrEmptyImport) {
			t.Fatalf("expected ErrEmptyImport, got %v", err)
		}
	})

	t.Run("bad rows are skipped, good rows stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkEntry{})).DoAndReturn(
			func(_ context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
				if e.Source != entities.EntrySourceImported || e.Verified {
					t.Fatalf("imported rows must arrive unverified: %+v", e)
				}
				return e, nil
			},
		)

		res, err := uc.Import(context.Background(), []ImportedRow{
			{TechnicianID: "tech-1", Date: friday, HoursWorked: 8},
			{TechnicianID: "", Date: friday, HoursWorked: 8},
			{TechnicianID: "tech-1", Date: friday, HoursWorked: 30},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Created) != 1 {
			t.Fatalf("expected 1 created, got %d", len(res.Created))
		}
		if len(res.Skipped) != 2 {
			t.Fatalf("expected 2 skipped, got %d", len(res.Skipped))
		}
	})

	t.Run("storage failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.WorkEntry{}, errors.New("db"))

		_, err := uc.Import(context.Background(), []ImportedRow{
			{TechnicianID: "tech-1", Date: friday, HoursWorked: 8},
			{TechnicianID: "tech-1", Date: saturday, HoursWorked: 4},
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkEntryUseCase_ListByTechnician(t *testing.T) {
	t.Run("invalid inputs", func(t *testing.T) {
		uc := NewWorkEntryUseCase(nil)
		if _, err := uc.ListByTechnician(context.Background(), " ", monday, sunday); !errors.Is(err, ErrInvalidTechnicianID) {
			t.Fatalf("expected ErrInvalidTechnicianID, got %v", err)
		}
		if _, err := uc.ListByTechnician(context.Background(), "tech-1", sunday, monday); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("normalizes the range to dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkEntryRepository(ctrl)
		uc := NewWorkEntryUseCase(repo)

		repo.EXPECT().ListByTechnicianAndRange(gomock.Any(), "tech-1", monday, sunday).Return(nil, nil)

		if _, err := uc.ListByTechnician(context.Background(), "tech-1", monday.Add(10*time.Hour), sunday.Add(23*time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
