package usecase

import (
	"fmt"
	"sort"
	"time"

	"fieldhours/internal/domain/entities"
)

// EntrySkip reports one entry dropped from a pass because its data failed
// validation. One bad row never blocks the rest of the pass.
type EntrySkip struct {
	EntryID string
	Err     error
}

func (s EntrySkip) String() string {
	return fmt.Sprintf("entry %s skipped: %v", s.EntryID, s.Err)
}

type slotKey struct {
	technicianID string
	date         time.Time
}

// BuildSlots groups entries into (technician, date) reconciliation slots and
// derives each slot's status, difference and verified state. Slots are rebuilt
// from scratch on every pass; the raw entries are never edited here.
//
// Verified rule: a slot is verified only when it has at least one imported
// record and every imported record is verified. A slot with no imported
// records has nothing to confirm against and is therefore not verified.
func BuildSlots(entries []entities.WorkEntry) ([]entities.ReconciliationSlot, []EntrySkip) {
	byKey := make(map[slotKey]*entities.ReconciliationSlot)
	var order []slotKey
	var skipped []EntrySkip

	for _, e := range entries {
		if e.Date.IsZero() {
			skipped = append(skipped, EntrySkip{EntryID: e.ID, Err: ErrInvalidDate})
			continue
		}
		if e.HoursWorked <= 0 || e.HoursWorked > 24 {
			skipped = append(skipped, EntrySkip{EntryID: e.ID, Err: ErrInvalidHours})
			continue
		}

		key := slotKey{technicianID: e.TechnicianID, date: dateKey(e.Date)}
		slot, ok := byKey[key]
		if !ok {
			slot = &entities.ReconciliationSlot{TechnicianID: key.technicianID, Date: key.date}
			byKey[key] = slot
			order = append(order, key)
		}

		switch e.Source {
		case entities.EntrySourceImported:
			slot.Imported = append(slot.Imported, e)
			slot.ImportedHours += e.HoursWorked
		default:
			slot.Manual = append(slot.Manual, e)
			slot.ManualHours += e.HoursWorked
		}
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].technicianID != order[j].technicianID {
			return order[i].technicianID < order[j].technicianID
		}
		return order[i].date.Before(order[j].date)
	})

	slots := make([]entities.ReconciliationSlot, 0, len(order))
	for _, key := range order {
		slot := byKey[key]
		finalizeSlot(slot)
		slots = append(slots, *slot)
	}
	return slots, skipped
}

func finalizeSlot(slot *entities.ReconciliationSlot) {
	slot.Difference = slot.ImportedHours - slot.ManualHours

	switch {
	case slot.ManualHours > 0 && slot.ImportedHours == 0:
		slot.Status = entities.SlotStatusMissingWebhook
	case slot.ManualHours == 0 && slot.ImportedHours > 0:
		slot.Status = entities.SlotStatusMissingManual
	case slot.ManualHours == slot.ImportedHours:
		slot.Status = entities.SlotStatusMatch
	default:
		slot.Status = entities.SlotStatusDiscrepancy
	}

	// Manual strictly wins for authoritative totals, even when it reports
	// fewer hours than the import.
	if len(slot.Manual) > 0 {
		slot.AuthoritativeHours = slot.ManualHours
	} else {
		slot.AuthoritativeHours = slot.ImportedHours
	}

	slot.Verified = slotVerified(*slot)
}

func slotVerified(slot entities.ReconciliationSlot) bool {
	if len(slot.Imported) == 0 {
		return false
	}
	for _, e := range slot.Imported {
		if !e.Verified {
			return false
		}
	}
	return true
}

// AuthoritativeEntries flattens slots into the entry set downstream pricing
// and aggregation work from. Manual entries pass through as-is; when a slot
// has only imported entries those are used instead, re-classified through the
// calendar rule so their buckets are derived exactly like manual ones.
func AuthoritativeEntries(slots []entities.ReconciliationSlot) ([]entities.WorkEntry, []EntrySkip) {
	var out []entities.WorkEntry
	var skipped []EntrySkip

	for _, slot := range slots {
		if len(slot.Manual) > 0 {
			out = append(out, slot.Manual...)
			continue
		}
		for _, e := range slot.Imported {
			c, err := Classify(e.Date, e.HoursWorked)
			if err != nil {
				skipped = append(skipped, EntrySkip{EntryID: e.ID, Err: err})
				continue
			}
			applyClassification(&e, c)
			out = append(out, e)
		}
	}
	return out, skipped
}
