package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreateEntryRequest_ResolveDate(t *testing.T) {
	r := CreateEntryRequest{Date: " 2026-08-28 "}
	got, err := r.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	r2 := CreateEntryRequest{Date: "28/08/2026"}
	if _, err := r2.ResolveDate(); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestUpdateEntryRequest_ResolveDate(t *testing.T) {
	r := UpdateEntryRequest{}
	got, err := r.ResolveDate()
	if err != nil || got != nil {
		t.Fatalf("expected nil date for omitted field, got %v %v", got, err)
	}

	date := "2026-08-30"
	r2 := UpdateEntryRequest{Date: &date}
	got, err = r2.ResolveDate()
	if err != nil || got == nil {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
	if !got.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}

	bad := "bogus"
	r3 := UpdateEntryRequest{Date: &bad}
	if _, err := r3.ResolveDate(); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestAgreeRequest_ResolveDate(t *testing.T) {
	r := AgreeRequest{TechnicianID: "tech-1", Date: "2026-08-28"}
	got, err := r.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", got)
	}
}
