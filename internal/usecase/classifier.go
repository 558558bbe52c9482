package usecase

import (
	"errors"
	"time"

	"fieldhours/internal/domain/entities"
)

var (
	ErrInvalidHours = errors.New("hours worked must be greater than 0 and at most 24")
	ErrInvalidDate  = errors.New("invalid date")
)

// regularDailyHours is the weekday threshold above which hours count as overtime.
const regularDailyHours = 8.0

// Classification is the calendar split of one entry's hours.
//
// Exactly one day kind applies per entry: Sunday fills SundayHours, Saturday
// fills WeekendHours, weekdays split between RegularHours and OvertimeHours.
// The four buckets always sum to the classified hours.

type Classification struct {
	RegularHours  float64
	OvertimeHours float64
	WeekendHours  float64
	SundayHours   float64
	IsWeekend     bool
	IsSunday      bool
}

// Classify partitions hoursWorked into calendar buckets for the given civil
// date. Pure and deterministic; the time-of-day component of date is ignored.
func Classify(date time.Time, hoursWorked float64) (Classification, error) {
	if date.IsZero() {
		return Classification{}, ErrInvalidDate
	}
	if hoursWorked <= 0 || hoursWorked > 24 {
		return Classification{}, ErrInvalidHours
	}

	switch date.Weekday() {
	case time.Sunday:
		return Classification{SundayHours: hoursWorked, IsSunday: true}, nil
	case time.Saturday:
		return Classification{WeekendHours: hoursWorked, IsWeekend: true}, nil
	default:
		c := Classification{RegularHours: hoursWorked}
		if hoursWorked > regularDailyHours {
			c.RegularHours = regularDailyHours
			c.OvertimeHours = hoursWorked - regularDailyHours
		}
		return c, nil
	}
}

// applyClassification copies the computed buckets onto an entry.
func applyClassification(e *entities.WorkEntry, c Classification) {
	e.RegularHours = c.RegularHours
	e.OvertimeHours = c.OvertimeHours
	e.WeekendHours = c.WeekendHours
	e.SundayHours = c.SundayHours
}

// dateKey normalizes a timestamp to its civil date in UTC. Slots, travel dedup
// and weekly rollups all key on this.
func dateKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday 00:00 UTC of the week containing t.
func weekStart(t time.Time) time.Time {
	day := dateKey(t)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // ISO: Sunday closes the week
	}
	return day.AddDate(0, 0, -(wd - 1))
}
