package usecase

import "fieldhours/internal/domain/entities"

// Billable-side multipliers are fixed business constants; the cost side uses
// the configured Saturday/Sunday rates from the agreement instead.
const (
	overtimeMultiplier     = 1.25
	saturdayBillMultiplier = 1.5
	sundayBillMultiplier   = 2.0
)

// PriceBreakdown is the money outcome of one entry or one aggregated group.
type PriceBreakdown struct {
	Cost    float64
	Revenue float64
	Profit  float64
}

// PriceEntry prices one classified entry against resolved rates.
//
// Revenue accrues for every entry regardless of source: billing reflects work
// performed. Cost accrues only for manual entries; imported hours are not
// payroll-eligible until a manual record exists. Travel amounts are not part
// of the per-entry price, they are attributed once per
// (technician, date, customer) by the aggregation layer.
func PriceEntry(e entities.WorkEntry, rates ResolvedRates) PriceBreakdown {
	p := PriceBreakdown{
		Revenue: e.RegularHours*rates.Billable +
			e.OvertimeHours*rates.Billable*overtimeMultiplier +
			e.WeekendHours*rates.Billable*saturdayBillMultiplier +
			e.SundayHours*rates.Billable*sundayBillMultiplier,
	}

	if e.Source == entities.EntrySourceManual {
		p.Cost = e.RegularHours*rates.Hourly +
			e.OvertimeHours*rates.Hourly*overtimeMultiplier +
			e.WeekendHours*rates.Saturday +
			e.SundayHours*rates.Sunday
	}

	p.Profit = p.Revenue - p.Cost
	return p
}
