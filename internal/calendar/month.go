package calendar

import (
	"fmt"
	"time"
)

// Month is the displayed year/month. The zero value is not valid; use MonthOf.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Shift moves by delta months with normal year wrap-around, unbounded in
// both directions.
func (m Month) Shift(delta int) Month {
	total := m.Year*12 + int(m.Month-1) + delta
	y := total / 12
	mo := total % 12
	if mo < 0 {
		mo += 12
		y--
	}
	return Month{Year: y, Month: time.Month(mo + 1)}
}

func (m Month) Days() int {
	return daysInMonth(m.Year, m.Month)
}

// String renders YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ParseMonth accepts YYYY-MM.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: use YYYY-MM", s)
	}
	return MonthOf(t), nil
}

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Today returns the local calendar date of now as YYYY-MM-DD (local
// midnight, never shifted through UTC).
func Today(now time.Time) string {
	y, m, d := now.Date()
	return FormatDate(y, m, d)
}

func FormatDate(y int, m time.Month, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}
