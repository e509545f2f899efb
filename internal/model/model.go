package model

import "strings"

const (
	// DateLayout is the on-disk date format for events (ISO-8601 calendar date).
	DateLayout = "2006-01-02"

	// MaxTitleLength is counted in characters (code points), not bytes.
	MaxTitleLength = 24

	// EventsKey is the key-value slot holding the persisted collection.
	EventsKey = "events"
)

// Event is one calendar entry. The persisted collection is a JSON array of these.
type Event struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

func (e Event) Key() EventKey {
	return EventKey{Date: e.Date, Title: e.Title}
}

// EventKey identifies an event by its (date, title) pair.
//
// The uniqueness invariant (no two events share a date and a case-insensitively
// equal title) makes this a stable identifier across re-renders.
type EventKey struct {
	Date  string
	Title string
}

func (k EventKey) String() string {
	return k.Date + "|" + k.Title
}

// ParseEventKey is the inverse of EventKey.String. Titles may contain '|', dates cannot.
func ParseEventKey(s string) (EventKey, bool) {
	date, title, ok := strings.Cut(s, "|")
	if !ok || date == "" {
		return EventKey{}, false
	}
	return EventKey{Date: date, Title: title}, true
}

func (k EventKey) Matches(e Event) bool {
	return e.Date == k.Date && e.Title == k.Title
}
