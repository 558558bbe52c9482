package usecase

import (
	"testing"

	"fieldhours/internal/domain/entities"
)

func TestPriceEntry_SundayRoundTrip(t *testing.T) {
	// hourly=20, billable=40, Sunday entry of 5h:
	// cost = 5 × (20×2 default) = 200, revenue = 5 × 40×2 = 400.
	rates := NewRateBook([]entities.RateAgreement{
		{TechnicianID: "tech-1", HourlyRate: 20, BillableRate: 40},
	}).Resolve("tech-1")

	e := entities.WorkEntry{
		TechnicianID: "tech-1",
		Source:       entities.EntrySourceManual,
		HoursWorked:  5,
		SundayHours:  5,
	}

	p := PriceEntry(e, rates)
	if !almostEqual(p.Cost, 200) {
		t.Fatalf("expected cost 200, got %v", p.Cost)
	}
	if !almostEqual(p.Revenue, 400) {
		t.Fatalf("expected revenue 400, got %v", p.Revenue)
	}
	if !almostEqual(p.Profit, 200) {
		t.Fatalf("expected profit 200, got %v", p.Profit)
	}
}

func TestPriceEntry_WeekdayOvertime(t *testing.T) {
	rates := ResolvedRates{Hourly: 20, Billable: 40, Saturday: 30, Sunday: 40}
	e := entities.WorkEntry{
		Source:        entities.EntrySourceManual,
		HoursWorked:   10,
		RegularHours:  8,
		OvertimeHours: 2,
	}

	p := PriceEntry(e, rates)
	// cost = 8×20 + 2×20×1.25 = 210; revenue = 8×40 + 2×40×1.25 = 420.
	if !almostEqual(p.Cost, 210) {
		t.Fatalf("expected cost 210, got %v", p.Cost)
	}
	if !almostEqual(p.Revenue, 420) {
		t.Fatalf("expected revenue 420, got %v", p.Revenue)
	}
}

func TestPriceEntry_SaturdayUsesConfiguredCostRate(t *testing.T) {
	rates := ResolvedRates{Hourly: 20, Billable: 40, Saturday: 36, Sunday: 40}
	e := entities.WorkEntry{
		Source:       entities.EntrySourceManual,
		HoursWorked:  4,
		WeekendHours: 4,
	}

	p := PriceEntry(e, rates)
	if !almostEqual(p.Cost, 144) {
		t.Fatalf("expected cost 4×36=144, got %v", p.Cost)
	}
	if !almostEqual(p.Revenue, 240) {
		t.Fatalf("expected revenue 4×40×1.5=240, got %v", p.Revenue)
	}
}

func TestPriceEntry_ImportedGeneratesNoCost(t *testing.T) {
	rates := ResolvedRates{Hourly: 20, Billable: 40, Saturday: 30, Sunday: 40}
	e := entities.WorkEntry{
		Source:       entities.EntrySourceImported,
		HoursWorked:  8,
		RegularHours: 8,
	}

	p := PriceEntry(e, rates)
	if p.Cost != 0 {
		t.Fatalf("imported entry must not generate cost, got %v", p.Cost)
	}
	if !almostEqual(p.Revenue, 320) {
		t.Fatalf("expected revenue 320, got %v", p.Revenue)
	}
	if !almostEqual(p.Profit, 320) {
		t.Fatalf("expected profit 320, got %v", p.Profit)
	}
}

func TestPriceEntry_ZeroRateDegradation(t *testing.T) {
	rates := NewRateBook(nil).Resolve("tech-without-agreement")
	e := entities.WorkEntry{
		Source:       entities.EntrySourceManual,
		HoursWorked:  8,
		RegularHours: 8,
	}

	p := PriceEntry(e, rates)
	if p.Cost != 0 || p.Revenue != 0 || p.Profit != 0 {
		t.Fatalf("expected all-zero pricing, got %+v", p)
	}
}
