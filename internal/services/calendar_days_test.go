package services

import (
	"errors"
	"testing"
	"time"
)

func TestStorageDayUsesLocalCalendarDay(t *testing.T) {
	location := time.FixedZone("BRT", -3*60*60)
	lateEvening := time.Date(2024, 2, 16, 1, 30, 0, 0, time.UTC)

	got := StorageDay(lateEvening, location)
	want := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestParseOptionalDayRange(t *testing.T) {
	from, to, err := ParseOptionalDayRange("2024-02-01", "2024-02-29")
	if err != nil {
		t.Fatalf("parse range: %v", err)
	}
	if from.Format(dayLayout) != "2024-02-01" || to.Format(dayLayout) != "2024-03-01" {
		t.Fatalf("unexpected range %s..%s", from, to)
	}

	from, to, err = ParseOptionalDayRange("", "")
	if err != nil || from != nil || to != nil {
		t.Fatalf("expected open range, got %v %v %v", from, to, err)
	}

	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "bad from", from: "01/02/2024", to: ""},
		{name: "bad to", from: "", to: "2024-13-01"},
		{name: "inverted", from: "2024-03-01", to: "2024-02-01"},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, _, err := ParseOptionalDayRange(testCase.from, testCase.to); !errors.Is(err, ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
		})
	}
}
