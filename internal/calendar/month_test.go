package calendar

import (
	"testing"
	"time"
)

func TestMonth_Shift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from  Month
		delta int
		want  Month
	}{
		{Month{2025, time.March}, 1, Month{2025, time.April}},
		{Month{2025, time.December}, 1, Month{2026, time.January}},
		{Month{2025, time.January}, -1, Month{2024, time.December}},
		{Month{2025, time.March}, -27, Month{2022, time.December}},
		{Month{2025, time.March}, 120, Month{2035, time.March}},
		{Month{0, time.January}, -1, Month{-1, time.December}},
		{Month{0, time.January}, -12, Month{-1, time.January}},
	}
	for _, tt := range tests {
		if got := tt.from.Shift(tt.delta); got != tt.want {
			t.Fatalf("%v.Shift(%d) = %v, want %v", tt.from, tt.delta, got, tt.want)
		}
	}
}

func TestMonth_ShiftRoundTrip(t *testing.T) {
	t.Parallel()

	m := Month{2024, time.February}
	cur := m
	for i := 0; i < 500; i++ {
		cur = cur.Shift(-1)
	}
	for i := 0; i < 500; i++ {
		cur = cur.Shift(1)
	}
	if cur != m {
		t.Fatalf("expected round trip to %v, got %v", m, cur)
	}
}

func TestToday_UsesLocalCalendarDate(t *testing.T) {
	t.Parallel()

	// 23:30 local on the 9th is the 10th in UTC for a UTC-1 zone; the local date wins.
	loc := time.FixedZone("UTC-1", -3600)
	now := time.Date(2025, time.March, 9, 23, 30, 0, 0, loc)
	if got := Today(now); got != "2025-03-09" {
		t.Fatalf("Today = %q, want 2025-03-09", got)
	}
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	m, err := ParseMonth("2024-02")
	if err != nil || m != (Month{2024, time.February}) {
		t.Fatalf("ParseMonth: %v %v", m, err)
	}
	if _, err := ParseMonth("2024-13"); err == nil {
		t.Fatalf("expected error for month 13")
	}
	if m.String() != "2024-02" {
		t.Fatalf("String = %q", m.String())
	}
}
