package store

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"monthcal/internal/model"
)

// failingKV wraps a real KV and fails writes on demand.
type failingKV struct {
	KV
	failSet bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.KV.Set(ctx, key, value)
}

func TestEventStore_MissingSlotIsEmpty(t *testing.T) {
	t.Parallel()

	es := Store{Dir: t.TempDir()}.Events()
	got, err := es.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestEventStore_SaveLoad_RoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	es := Store{Dir: t.TempDir()}.Events()

	want := []model.Event{
		{Date: "2025-03-10", Title: "Standup"},
		{Date: "2025-03-09", Title: "Brunch"},
		{Date: "2025-03-10", Title: "Review"},
	}
	if err := es.SaveAll(ctx, want); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	got, err := es.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}

func TestEventStore_StoredFormatIsJSONArrayUnderEventsKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	if err := s.Events().SaveAll(ctx, []model.Event{{Date: "2025-03-10", Title: "Standup"}}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	raw, ok, err := s.Get(ctx, "events")
	if err != nil || !ok {
		t.Fatalf("Get events: ok=%v err=%v", ok, err)
	}
	if raw != `[{"date":"2025-03-10","title":"Standup"}]` {
		t.Fatalf("unexpected stored value: %s", raw)
	}
}

func TestEventStore_UnparseableSlotIsEmptyWithPersistenceError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	for _, raw := range []string{"{not json", `{"date":"2025-03-10"}`, `"events"`} {
		if err := s.Set(ctx, model.EventsKey, raw); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := s.Events().LoadAll(ctx)
		var pe *PersistenceError
		if !errors.As(err, &pe) || pe.Op != "read" {
			t.Fatalf("raw %q: expected read PersistenceError, got %v", raw, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("raw %q: expected empty collection, got %#v", raw, got)
		}
	}
}

func TestEventStore_WriteFailureLeavesPreviousState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := &failingKV{KV: Store{Dir: t.TempDir()}}
	es := NewEventStore(kv)

	before := []model.Event{{Date: "2025-03-10", Title: "Standup"}}
	if err := es.SaveAll(ctx, before); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	kv.failSet = true
	err := es.SaveAll(ctx, append(before, model.Event{Date: "2025-03-11", Title: "Lunch"}))
	var pe *PersistenceError
	if !errors.As(err, &pe) || pe.Op != "write" {
		t.Fatalf("expected write PersistenceError, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped cause, got %q", err.Error())
	}

	got, err := es.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if !reflect.DeepEqual(got, before) {
		t.Fatalf("expected previous state, got %#v", got)
	}
}

func TestEventStore_ReplaceForDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	es := Store{Dir: t.TempDir()}.Events()
	if err := es.SaveAll(ctx, []model.Event{
		{Date: "2025-03-10", Title: "A"},
		{Date: "2025-03-11", Title: "B"},
		{Date: "2025-03-10", Title: "C"},
	}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	if err := es.ReplaceForDate(ctx, "2025-03-10", []model.Event{{Date: "2025-03-10", Title: "D"}}); err != nil {
		t.Fatalf("ReplaceForDate: %v", err)
	}
	got, err := es.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	want := []model.Event{
		{Date: "2025-03-11", Title: "B"},
		{Date: "2025-03-10", Title: "D"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v, got %#v", want, got)
	}
}

func TestEventStore_ReplaceForDateRefusesToOverwriteCorruptSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	if err := s.Set(ctx, model.EventsKey, "garbage"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Events().ReplaceForDate(ctx, "2025-03-10", nil); err == nil {
		t.Fatalf("expected error")
	}
	raw, _, _ := s.Get(ctx, model.EventsKey)
	if raw != "garbage" {
		t.Fatalf("expected corrupt slot untouched, got %q", raw)
	}
}

func TestStore_UpdatedAtTracksWrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	at, err := s.UpdatedAt(ctx, model.EventsKey)
	if err != nil || !at.IsZero() {
		t.Fatalf("expected zero time before write, got %v err=%v", at, err)
	}
	if err := s.Events().SaveAll(ctx, nil); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	at, err = s.UpdatedAt(ctx, model.EventsKey)
	if err != nil || at.IsZero() {
		t.Fatalf("expected write time, got %v err=%v", at, err)
	}
}
