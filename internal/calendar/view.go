package calendar

import (
	"strings"

	"monthcal/internal/model"
)

// MaxVisibleEvents is how many events a cell renders before collapsing the
// rest into a single "+N more" target.
const MaxVisibleEvents = 2

type TargetKind int

const (
	TargetEvent TargetKind = iota
	TargetMore
)

const (
	eventTargetPrefix = "event:"
	moreTargetPrefix  = "more:"
)

// Target is a clickable element in the month view. IDs are derived from
// (date, title) so they stay valid across re-renders.
type Target struct {
	Kind TargetKind
	Date string
	Key  model.EventKey
}

func EventTargetID(k model.EventKey) string { return eventTargetPrefix + k.String() }

func MoreTargetID(date string) string { return moreTargetPrefix + date }

func ParseTarget(id string) (Target, bool) {
	switch {
	case strings.HasPrefix(id, eventTargetPrefix):
		k, ok := model.ParseEventKey(strings.TrimPrefix(id, eventTargetPrefix))
		if !ok {
			return Target{}, false
		}
		return Target{Kind: TargetEvent, Date: k.Date, Key: k}, true
	case strings.HasPrefix(id, moreTargetPrefix):
		date := strings.TrimPrefix(id, moreTargetPrefix)
		if date == "" {
			return Target{}, false
		}
		return Target{Kind: TargetMore, Date: date}, true
	default:
		return Target{}, false
	}
}

type EventView struct {
	Title    string `json:"title"`
	TargetID string `json:"target"`
}

type MoreView struct {
	Remaining int    `json:"remaining"`
	Label     string `json:"label"`
	TargetID  string `json:"target"`
}

type CellView struct {
	Day    int         `json:"day,omitempty"`
	Date   string      `json:"date,omitempty"`
	Today  bool        `json:"today,omitempty"`
	Total  int         `json:"total,omitempty"`
	Events []EventView `json:"events,omitempty"`
	More   *MoreView   `json:"more,omitempty"`
}

func (c CellView) Blank() bool { return c.Day == 0 }

// TargetIDs lists the cell's clickable elements in render order.
func (c CellView) TargetIDs() []string {
	out := make([]string, 0, len(c.Events)+1)
	for _, ev := range c.Events {
		out = append(out, ev.TargetID)
	}
	if c.More != nil {
		out = append(out, c.More.TargetID)
	}
	return out
}

type MonthView struct {
	Month    Month        `json:"-"`
	Title    string       `json:"title"`
	Weekdays []string     `json:"weekdays"`
	Weeks    [][]CellView `json:"weeks"`
}

// BuildMonthView maps events onto the month's grid. today (YYYY-MM-DD) marks
// the matching cell; pass "" to mark none.
func BuildMonthView(m Month, events []model.Event, labels Labels, today string) MonthView {
	byDate := map[string][]model.Event{}
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	cells := ComputeMonthGrid(m.Year, m.Month)
	v := MonthView{
		Month:    m,
		Title:    labels.MonthTitle(m),
		Weekdays: labels.Weekdays[:],
	}
	for i := 0; i < len(cells); i += 7 {
		week := make([]CellView, 0, 7)
		for _, c := range cells[i : i+7] {
			week = append(week, buildCell(c, byDate[c.Date], labels, today))
		}
		v.Weeks = append(v.Weeks, week)
	}
	return v
}

func buildCell(c Cell, dayEvents []model.Event, labels Labels, today string) CellView {
	if c.Blank() {
		return CellView{}
	}
	cv := CellView{Day: c.Day, Date: c.Date, Today: c.Date == today, Total: len(dayEvents)}
	shown := dayEvents
	if len(shown) > MaxVisibleEvents {
		shown = shown[:MaxVisibleEvents]
	}
	for _, ev := range shown {
		cv.Events = append(cv.Events, EventView{Title: ev.Title, TargetID: EventTargetID(ev.Key())})
	}
	if rest := len(dayEvents) - len(shown); rest > 0 {
		cv.More = &MoreView{Remaining: rest, Label: labels.More(rest), TargetID: MoreTargetID(c.Date)}
	}
	return cv
}

// Cells flattens the weeks in grid order.
func (v MonthView) Cells() []CellView {
	out := make([]CellView, 0, len(v.Weeks)*7)
	for _, w := range v.Weeks {
		out = append(out, w...)
	}
	return out
}

// Find returns the cell for date, if it is in this month.
func (v MonthView) Find(date string) (CellView, bool) {
	for _, w := range v.Weeks {
		for _, c := range w {
			if !c.Blank() && c.Date == date {
				return c, true
			}
		}
	}
	return CellView{}, false
}
