package store

import "fmt"

// PersistenceError reports a failed read, parse or write of a stored slot.
type PersistenceError struct {
	Op  string // "read" or "write"; unparseable content is a read failure
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
