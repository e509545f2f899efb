// Package calendar lays out Monday-first month grids and maps events onto them.
package calendar

import (
	"time"

	"monthcal/internal/model"
)

// Cell is one grid position. Blank cells (outside the month) have Day == 0.
type Cell struct {
	Day  int
	Date string
}

func (c Cell) Blank() bool { return c.Day == 0 }

// MondayIndex remaps time.Weekday (Sunday=0) to Monday-first (Monday=0, Sunday=6).
func MondayIndex(wd time.Weekday) int {
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// ComputeMonthGrid returns the cells for a Monday-first grid of the month.
// The length is the smallest multiple of 7 that covers the leading blanks and
// every day of the month.
func ComputeMonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := MondayIndex(first.Weekday())
	total := daysInMonth(year, month)
	cells := (start + total + 6) / 7 * 7

	out := make([]Cell, cells)
	for i := range out {
		day := i - start + 1
		if i < start || day > total {
			continue
		}
		out[i] = Cell{Day: day, Date: FormatDate(year, month, day)}
	}
	return out
}

// EventsForDate filters all to the events on date, keeping collection order.
func EventsForDate(all []model.Event, date string) []model.Event {
	var out []model.Event
	for _, ev := range all {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	return out
}
