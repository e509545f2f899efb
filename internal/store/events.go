package store

import (
	"context"
	"encoding/json"
	"fmt"

	"monthcal/internal/model"

	"go.uber.org/zap"
)

// EventStore reads and writes the whole event collection as one JSON array.
// There are no partial updates: every mutation rewrites the full slot.
type EventStore struct {
	kv  KV
	key string
}

func NewEventStore(kv KV) *EventStore {
	return &EventStore{kv: kv, key: model.EventsKey}
}

// LoadAll returns the persisted collection. A missing slot is an empty
// collection. Unparseable content also yields an empty (non-nil) slice, along
// with a *PersistenceError so callers can report it.
func (s *EventStore) LoadAll(ctx context.Context) ([]model.Event, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return []model.Event{}, &PersistenceError{Op: "read", Key: s.key, Err: err}
	}
	if !ok || raw == "" {
		return []model.Event{}, nil
	}
	var events []model.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		zap.L().Warn("events slot is not a JSON event array", zap.String("key", s.key), zap.Error(err))
		return []model.Event{}, &PersistenceError{Op: "read", Key: s.key, Err: fmt.Errorf("parse: %w", err)}
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

// SaveAll serializes and writes the full collection.
func (s *EventStore) SaveAll(ctx context.Context, events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	b, err := json.Marshal(events)
	if err != nil {
		return &PersistenceError{Op: "write", Key: s.key, Err: err}
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		zap.L().Warn("write events failed", zap.String("key", s.key), zap.Error(err))
		return &PersistenceError{Op: "write", Key: s.key, Err: err}
	}
	zap.L().Debug("saved events", zap.String("key", s.key), zap.Int("count", len(events)))
	return nil
}

// ReplaceForDate drops every event on date and appends replacement.
// A collection that fails to load is never overwritten.
func (s *EventStore) ReplaceForDate(ctx context.Context, date string, replacement []model.Event) error {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	out := make([]model.Event, 0, len(all)+len(replacement))
	for _, ev := range all {
		if ev.Date != date {
			out = append(out, ev)
		}
	}
	out = append(out, replacement...)
	return s.SaveAll(ctx, out)
}
