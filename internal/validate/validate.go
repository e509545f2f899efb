// Package validate enforces event title rules, the literal date pattern and
// per-date title uniqueness.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"monthcal/internal/model"

	"golang.org/x/text/cases"
)

// ErrDuplicate marks a ValidationError caused by an existing event with the
// same date and case-insensitively equal title.
var ErrDuplicate = errors.New("duplicate event")

// ValidationError is a user-facing rejection of form input.
type ValidationError struct {
	Field   string
	Message string
	err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Title trims title and checks its length in code points. Whitespace-only
// titles are empty.
func Title(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "event title cannot be empty"}
	}
	if n := utf8.RuneCountInString(title); n > model.MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("event title is too long: maximum %d characters, got %d", model.MaxTitleLength, n),
		}
	}
	return nil
}

// Date only checks the literal YYYY-MM-DD shape; "2025-13-40" passes.
func Date(date string) error {
	if !datePattern.MatchString(date) {
		return &ValidationError{Field: "date", Message: "invalid date format: use YYYY-MM-DD"}
	}
	return nil
}

// Duplicate builds the error reported when FindDuplicate hits.
func Duplicate(date, title string) error {
	return &ValidationError{
		Field:   "title",
		Message: fmt.Sprintf("an event named %q already exists on %s", title, date),
		err:     ErrDuplicate,
	}
}

// FindDuplicate returns the first event on date whose title equals title
// ignoring case. Events whose title is exactly exclude (the original title of
// an event being edited) are skipped.
func FindDuplicate(events []model.Event, date, title string, exclude ...string) (model.Event, bool) {
	fold := cases.Fold()
	want := fold.String(title)
	for _, ev := range events {
		if ev.Date != date {
			continue
		}
		if len(exclude) > 0 && ev.Title == exclude[0] {
			continue
		}
		if fold.String(ev.Title) == want {
			return ev, true
		}
	}
	return model.Event{}, false
}

// EqualTitles reports whether two titles collide under the uniqueness rule.
func EqualTitles(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
