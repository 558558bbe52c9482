package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"
)

// ISummaryUseCase produces the derived reporting views: per-technician period
// summaries and per-technician weekly rollups.
//
// Each call is one read-only pipeline run: fetch the three source collections
// in one round trip each, reconcile to the authoritative entry set, classify,
// price and aggregate. Any fetch failure aborts the whole pass with no partial
// result. No writes happen here; auto-verify belongs to the reconciliation
// pass.

type ISummaryUseCase interface {
	Summarize(ctx context.Context, from, to time.Time) (SummaryResult, error)
	WeeklyRollups(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WeeklySummary, error)
}

// SummaryResult carries the summaries plus any rows skipped for bad data, so
// the report layer can render a partial dashboard with a warning banner.
type SummaryResult struct {
	Summaries []entities.TechnicianPeriodSummary
	Skipped   []EntrySkip
}

type SummaryUseCase struct {
	entries interfaces.IWorkEntryRepository
	rates   interfaces.IRateAgreementRepository
	travel  interfaces.ITravelAgreementRepository
}

var _ ISummaryUseCase = (*SummaryUseCase)(nil)

func NewSummaryUseCase(
	entries interfaces.IWorkEntryRepository,
	rates interfaces.IRateAgreementRepository,
	travel interfaces.ITravelAgreementRepository,
) *SummaryUseCase {
	return &SummaryUseCase{entries: entries, rates: rates, travel: travel}
}

func (u *SummaryUseCase) Summarize(ctx context.Context, from, to time.Time) (SummaryResult, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return SummaryResult{}, ErrInvalidDateRange
	}

	entries, err := u.entries.ListByRange(ctx, dateKey(from), dateKey(to))
	if err != nil {
		return SummaryResult{}, err
	}
	rateRows, err := u.rates.ListAll(ctx)
	if err != nil {
		return SummaryResult{}, err
	}
	travelRows, err := u.travel.ListAll(ctx)
	if err != nil {
		return SummaryResult{}, err
	}

	slots, skipped := BuildSlots(entries)
	authoritative, authSkipped := AuthoritativeEntries(slots)
	skipped = append(skipped, authSkipped...)

	rateBook := NewRateBook(rateRows)
	travelBook := NewTravelBook(travelRows)

	summaries, sumSkipped := Summarize(authoritative, rateBook, travelBook)
	skipped = append(skipped, sumSkipped...)

	if len(skipped) > 0 {
		log.Printf("[summary][usecase] pass completed with skipped rows count=%d", len(skipped))
	}
	return SummaryResult{Summaries: summaries, Skipped: skipped}, nil
}

func (u *SummaryUseCase) WeeklyRollups(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WeeklySummary, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	entries, err := u.entries.ListByTechnicianAndRange(ctx, technicianID, dateKey(from), dateKey(to))
	if err != nil {
		return nil, err
	}

	slots, _ := BuildSlots(entries)
	authoritative, _ := AuthoritativeEntries(slots)
	return WeeklyRollup(authoritative), nil
}
