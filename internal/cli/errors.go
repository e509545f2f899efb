package cli

import (
	"errors"
	"fmt"

	"monthcal/internal/presenter"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

// cancelledError reports a prompt the user declined. The command exits
// non-zero without touching the store.
type cancelledError struct {
	action string
}

func (e cancelledError) Error() string {
	return e.action + " cancelled"
}

// describe maps controller errors onto CLI errors.
func describe(err error, kind, id string) error {
	if errors.Is(err, presenter.ErrNotFound) {
		return errNotFound(kind, id)
	}
	return err
}
