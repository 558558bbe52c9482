package usecase

import (
	"errors"
	"math"
	"testing"
	"time"
)

// 2026-08-24 is a Monday; the week runs through Sunday 2026-08-30.
var (
	monday   = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	friday   = time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestClassify_TotalsInvariant(t *testing.T) {
	hours := []float64{0.25, 1, 4, 7.75, 8, 8.25, 10, 12.5, 24}
	for d := 0; d < 7; d++ {
		date := monday.AddDate(0, 0, d)
		for _, h := range hours {
			c, err := Classify(date, h)
			if err != nil {
				t.Fatalf("Classify(%v, %v) unexpected error: %v", date, h, err)
			}
			sum := c.RegularHours + c.OvertimeHours + c.WeekendHours + c.SundayHours
			if !almostEqual(sum, h) {
				t.Fatalf("Classify(%v, %v) buckets sum to %v", date, h, sum)
			}
		}
	}
}

func TestClassify_DayKindExclusivity(t *testing.T) {
	t.Run("sunday", func(t *testing.T) {
		c, err := Classify(sunday, 6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.SundayHours != 6 || c.RegularHours != 0 || c.OvertimeHours != 0 || c.WeekendHours != 0 {
			t.Fatalf("unexpected classification: %+v", c)
		}
		if !c.IsSunday || c.IsWeekend {
			t.Fatalf("unexpected flags: %+v", c)
		}
	})

	t.Run("saturday", func(t *testing.T) {
		c, err := Classify(saturday, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.WeekendHours != 9 || c.RegularHours != 0 || c.OvertimeHours != 0 || c.SundayHours != 0 {
			t.Fatalf("unexpected classification: %+v", c)
		}
		if !c.IsWeekend || c.IsSunday {
			t.Fatalf("unexpected flags: %+v", c)
		}
	})

	t.Run("weekday", func(t *testing.T) {
		for d := 0; d < 5; d++ {
			c, err := Classify(monday.AddDate(0, 0, d), 8)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.WeekendHours != 0 || c.SundayHours != 0 {
				t.Fatalf("weekday leaked into weekend buckets: %+v", c)
			}
		}
	})
}

func TestClassify_OvertimeThreshold(t *testing.T) {
	tests := []struct {
		hours        float64
		wantRegular  float64
		wantOvertime float64
	}{
		{4, 4, 0},
		{8, 8, 0},
		{10, 8, 2},
		{12.5, 8, 4.5},
	}
	for _, tt := range tests {
		c, err := Classify(friday, tt.hours)
		if err != nil {
			t.Fatalf("Classify(%v) unexpected error: %v", tt.hours, err)
		}
		if !almostEqual(c.RegularHours, tt.wantRegular) || !almostEqual(c.OvertimeHours, tt.wantOvertime) {
			t.Fatalf("Classify(%v) = regular %v overtime %v, want %v/%v",
				tt.hours, c.RegularHours, c.OvertimeHours, tt.wantRegular, tt.wantOvertime)
		}
	}
}

func TestClassify_InvalidInput(t *testing.T) {
	for _, h := range []float64{0, -1, 24.25} {
		if _, err := Classify(friday, h); !errors.Is(err, ErrInvalidHours) {
			t.Fatalf("Classify(%v) expected ErrInvalidHours, got %v", h, err)
		}
	}
	if _, err := Classify(time.Time{}, 8); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	a, err1 := Classify(saturday, 7.5)
	b, err2 := Classify(saturday, 7.5)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if a != b {
		t.Fatalf("identical inputs classified differently: %+v vs %+v", a, b)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date time.Time
		want time.Time
	}{
		{monday, monday},
		{friday, monday},
		{saturday, monday},
		{sunday, monday},
		{monday.AddDate(0, 0, 7), monday.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		if got := weekStart(tt.date); !got.Equal(tt.want) {
			t.Fatalf("weekStart(%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
