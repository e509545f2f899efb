package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"monthcal/internal/model"
	"monthcal/internal/validate"
)

// Export writes the collection as an indented JSON array.
func (s *EventStore) Export(ctx context.Context, w io.Writer) (int, error) {
	events, err := s.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return 0, err
	}
	return len(events), nil
}

type SkippedEvent struct {
	Event  model.Event `json:"event"`
	Reason string      `json:"reason"`
}

type ImportResult struct {
	Added   int            `json:"added"`
	Skipped []SkippedEvent `json:"skipped"`
}

// Import merges a JSON event array into the collection. Entries that fail
// validation or collide with an existing (or earlier imported) event are
// skipped and reported; the rest are appended in input order.
func (s *EventStore) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	var incoming []model.Event
	if err := json.NewDecoder(r).Decode(&incoming); err != nil {
		return ImportResult{}, fmt.Errorf("decode import: %w", err)
	}

	all, err := s.LoadAll(ctx)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Skipped: []SkippedEvent{}}
	for _, ev := range incoming {
		ev.Title = strings.TrimSpace(ev.Title)
		if err := validate.Title(ev.Title); err != nil {
			res.Skipped = append(res.Skipped, SkippedEvent{Event: ev, Reason: err.Error()})
			continue
		}
		if err := validate.Date(ev.Date); err != nil {
			res.Skipped = append(res.Skipped, SkippedEvent{Event: ev, Reason: err.Error()})
			continue
		}
		if _, dup := validate.FindDuplicate(all, ev.Date, ev.Title); dup {
			res.Skipped = append(res.Skipped, SkippedEvent{Event: ev, Reason: validate.Duplicate(ev.Date, ev.Title).Error()})
			continue
		}
		all = append(all, ev)
		res.Added++
	}
	if res.Added == 0 {
		return res, nil
	}
	if err := s.SaveAll(ctx, all); err != nil {
		return ImportResult{}, err
	}
	return res, nil
}
