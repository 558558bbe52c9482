package usecase

import (
	"sort"
	"time"

	"fieldhours/internal/domain/entities"
)

type travelSlotKey struct {
	technicianID string
	date         time.Time
	customerID   string
}

// Summarize rolls authoritative entries up into one summary per technician.
//
// Travel amounts are attributed once per unique (technician, date, customer)
// triple across the whole group, never once per entry. The cost side of a
// travel pair only accrues when a manual entry exists for the triple; the
// revenue side accrues for any source. Results sort descending by profit.
func Summarize(entries []entities.WorkEntry, rates *RateBook, travel *TravelBook) ([]entities.TechnicianPeriodSummary, []EntrySkip) {
	byTechnician := make(map[string]*entities.TechnicianPeriodSummary)
	daysWorked := make(map[string]map[time.Time]bool)
	var order []string
	var skipped []EntrySkip

	travelCostSeen := make(map[travelSlotKey]bool)
	travelRevenueSeen := make(map[travelSlotKey]bool)

	for _, e := range entries {
		if e.Date.IsZero() {
			skipped = append(skipped, EntrySkip{EntryID: e.ID, Err: ErrInvalidDate})
			continue
		}
		if e.HoursWorked <= 0 || e.HoursWorked > 24 {
			skipped = append(skipped, EntrySkip{EntryID: e.ID, Err: ErrInvalidHours})
			continue
		}

		s, ok := byTechnician[e.TechnicianID]
		if !ok {
			s = &entities.TechnicianPeriodSummary{TechnicianID: e.TechnicianID}
			byTechnician[e.TechnicianID] = s
			daysWorked[e.TechnicianID] = make(map[time.Time]bool)
			order = append(order, e.TechnicianID)
		}

		day := dateKey(e.Date)
		daysWorked[e.TechnicianID][day] = true
		if day.After(s.LastWorked) {
			s.LastWorked = day
		}

		s.TotalHours += e.HoursWorked
		s.RegularHours += e.RegularHours
		s.OvertimeHours += e.OvertimeHours
		s.WeekendHours += e.WeekendHours
		s.SundayHours += e.SundayHours

		r := rates.Resolve(e.TechnicianID)
		p := PriceEntry(e, r)
		s.Cost += p.Cost
		s.Revenue += p.Revenue

		if e.CustomerID != "" {
			t := travel.Resolve(e.CustomerID, e.TechnicianID)
			key := travelSlotKey{technicianID: e.TechnicianID, date: day, customerID: e.CustomerID}
			if !travelRevenueSeen[key] {
				travelRevenueSeen[key] = true
				s.Revenue += t.FromClient
			}
			if e.Source == entities.EntrySourceManual && !travelCostSeen[key] {
				travelCostSeen[key] = true
				s.Cost += t.ToTechnician
			}
		}
	}

	summaries := make([]entities.TechnicianPeriodSummary, 0, len(order))
	for _, technicianID := range order {
		s := byTechnician[technicianID]
		s.DaysWorked = len(daysWorked[technicianID])
		s.Profit = s.Revenue - s.Cost
		summaries = append(summaries, *s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Profit > summaries[j].Profit
	})
	return summaries, skipped
}

// WeeklyRollup buckets entries by the Monday of their week and sums the
// classified hours. Weeks come back in chronological order.
func WeeklyRollup(entries []entities.WorkEntry) []entities.WeeklySummary {
	byWeek := make(map[time.Time]*entities.WeeklySummary)

	for _, e := range entries {
		if e.Date.IsZero() || e.HoursWorked <= 0 {
			continue
		}
		start := weekStart(e.Date)
		w, ok := byWeek[start]
		if !ok {
			w = &entities.WeeklySummary{WeekStart: start}
			byWeek[start] = w
		}
		w.AllHours += e.HoursWorked
		w.RegularHours += e.RegularHours
		w.OvertimeHours += e.OvertimeHours
		w.WeekendHours += e.WeekendHours
		w.SundayHours += e.SundayHours
	}

	weeks := make([]entities.WeeklySummary, 0, len(byWeek))
	for _, w := range byWeek {
		weeks = append(weeks, *w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}
