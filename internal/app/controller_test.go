package app

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"monthcal/internal/calendar"
	"monthcal/internal/model"
	"monthcal/internal/store"
	"monthcal/internal/validate"
)

type recordingPrompt struct {
	text     string
	confirm  bool
	notified []string
}

func (p *recordingPrompt) AskText(_, _ string) (string, bool) { return p.text, p.text != "" }
func (p *recordingPrompt) Confirm(string) bool                 { return p.confirm }
func (p *recordingPrompt) Notify(msg string)                   { p.notified = append(p.notified, msg) }

var fixedNow = time.Date(2025, time.March, 9, 23, 30, 0, 0, time.FixedZone("UTC-1", -3600))

func newTestController(t *testing.T) (*Controller, *store.EventStore, *recordingPrompt) {
	t.Helper()
	es := store.Store{Dir: t.TempDir()}.Events()
	pr := &recordingPrompt{}
	c := New(es, pr, Options{Labels: calendar.LabelsFor("en"), Now: func() time.Time { return fixedNow }})
	c.Render(context.Background())
	return c, es, pr
}

func TestNew_DefaultsToCurrentMonthAndTodayLocal(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t)
	st := c.State()
	if st.Month != (calendar.Month{Year: 2025, Month: time.March}) {
		t.Fatalf("month = %v", st.Month)
	}
	if st.Form.Date != "2025-03-09" {
		t.Fatalf("form date = %q, want local date 2025-03-09", st.Form.Date)
	}
	if c.View().Title != "March 2025" {
		t.Fatalf("view title = %q", c.View().Title)
	}
}

func TestMonthNavigation_WrapsYears(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _, _ := newTestController(t)
	for i := 0; i < 3; i++ {
		c.PrevMonth(ctx)
	}
	if got := c.State().Month; got != (calendar.Month{Year: 2024, Month: time.December}) {
		t.Fatalf("after 3x prev: %v", got)
	}
	v := c.NextMonth(ctx)
	if v.Title != "January 2025" {
		t.Fatalf("after next: %q", v.Title)
	}
}

func TestSubmit_AddsEventAndResetsForm(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, es, pr := newTestController(t)

	if err := c.Submit(ctx, Form{Date: "2025-03-10", Title: "  Standup  "}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	all, _ := es.LoadAll(ctx)
	got := calendar.EventsForDate(all, "2025-03-10")
	if len(got) != 1 || got[0].Title != "Standup" {
		t.Fatalf("expected exactly one trimmed event, got %#v", got)
	}
	if st := c.State(); st.Form != (Form{Date: "2025-03-09"}) {
		t.Fatalf("expected reset form with today's date, got %#v", st.Form)
	}
	cell, _ := c.View().Find("2025-03-10")
	if len(cell.Events) != 1 {
		t.Fatalf("expected re-render to show the event, got %#v", cell)
	}
	if len(pr.notified) != 0 {
		t.Fatalf("unexpected notifications %v", pr.notified)
	}
}

func TestSubmit_DuplicateWithDifferentCasingIsRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, es, pr := newTestController(t)

	if err := c.Submit(ctx, Form{Date: "2025-03-10", Title: "Standup"}); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	err := c.Submit(ctx, Form{Date: "2025-03-10", Title: "STANDUP"})
	if !errors.Is(err, validate.ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if len(pr.notified) != 1 {
		t.Fatalf("expected one notification, got %v", pr.notified)
	}
	all, _ := es.LoadAll(ctx)
	if got := calendar.EventsForDate(all, "2025-03-10"); len(got) != 1 || got[0].Title != "Standup" {
		t.Fatalf("expected the single original entry, got %#v", got)
	}
	if c.State().Form.Title != "STANDUP" {
		t.Fatalf("expected rejected form to keep input, got %#v", c.State().Form)
	}
}

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		form Form
	}{
		{name: "empty title", form: Form{Date: "2025-03-10", Title: "  "}},
		{name: "long title", form: Form{Date: "2025-03-10", Title: "0123456789012345678901234"}},
		{name: "bad date", form: Form{Date: "10.03.2025", Title: "Standup"}},
		{name: "empty date", form: Form{Date: "", Title: "Standup"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			c, es, pr := newTestController(t)
			err := c.Submit(ctx, tt.form)
			var ve *validate.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(pr.notified) != 1 {
				t.Fatalf("expected notification, got %v", pr.notified)
			}
			if all, _ := es.LoadAll(ctx); len(all) != 0 {
				t.Fatalf("expected nothing saved, got %#v", all)
			}
		})
	}
}

func TestRender_UnparseableStoreDegradesToEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.Store{Dir: t.TempDir()}
	if err := s.Set(ctx, model.EventsKey, "not-json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	pr := &recordingPrompt{}
	c := New(s.Events(), pr, Options{Now: func() time.Time { return fixedNow }})
	v := c.Render(ctx)
	if len(v.Weeks) == 0 {
		t.Fatalf("expected grid to render")
	}
	if len(pr.notified) != 1 {
		t.Fatalf("expected one load notification, got %v", pr.notified)
	}

	// Submitting must not clobber the unreadable slot.
	if err := c.Submit(ctx, Form{Date: "2025-03-10", Title: "Standup"}); err == nil {
		t.Fatalf("expected submit to abort")
	}
	raw, _, _ := s.Get(ctx, model.EventsKey)
	if raw != "not-json" {
		t.Fatalf("expected slot untouched, got %q", raw)
	}
}

func TestSubmit_UnreadableStoreAbortsWithoutOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := store.Store{Dir: t.TempDir()}
	if err := s.Set(ctx, model.EventsKey, "not-json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	pr := &recordingPrompt{}
	c := New(s.Events(), pr, Options{Now: func() time.Time { return fixedNow }})

	form := Form{Date: "2025-03-10", Title: "Standup"}
	err := c.Submit(ctx, form)
	var perr *store.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Submit err = %v, want *store.PersistenceError", err)
	}
	raw, _, _ := s.Get(ctx, model.EventsKey)
	if raw != "not-json" {
		t.Fatalf("slot overwritten: %q", raw)
	}
	if len(pr.notified) != 1 {
		t.Fatalf("notified = %v", pr.notified)
	}
	if got := c.State().Form; got != form {
		t.Fatalf("form = %#v, want %#v", got, form)
	}
}

// saveFailingEvents reads through to a real store but fails every write.
type saveFailingEvents struct {
	*store.EventStore
	err error
}

func (e saveFailingEvents) SaveAll(context.Context, []model.Event) error { return e.err }

func TestSubmit_WriteFailureKeepsCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	es := store.Store{Dir: t.TempDir()}.Events()
	seed := []model.Event{{Date: "2025-03-10", Title: "Standup"}}
	if err := es.SaveAll(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	diskFull := errors.New("disk full")
	pr := &recordingPrompt{}
	c := New(saveFailingEvents{EventStore: es, err: diskFull}, pr, Options{Now: func() time.Time { return fixedNow }})
	c.Render(ctx)

	form := Form{Date: "2025-03-11", Title: "Retro"}
	if err := c.Submit(ctx, form); !errors.Is(err, diskFull) {
		t.Fatalf("Submit err = %v, want %v", err, diskFull)
	}
	if len(pr.notified) != 1 {
		t.Fatalf("notified = %v", pr.notified)
	}
	if got := c.State().Form; got != form {
		t.Fatalf("form = %#v, want %#v", got, form)
	}
	got, err := es.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if !reflect.DeepEqual(got, seed) {
		t.Fatalf("collection = %#v, want %#v", got, seed)
	}
	if cell, _ := c.View().Find("2025-03-11"); cell.Total != 0 {
		t.Fatalf("view shows unsaved event: %#v", cell)
	}
}

func TestActivate_RoutesEventAndMoreTargets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, _, _ := newTestController(t)
	for _, title := range []string{"One", "Two", "Three"} {
		if err := c.Submit(ctx, Form{Date: "2025-03-10", Title: title}); err != nil {
			t.Fatalf("Submit %s: %v", title, err)
		}
	}
	cell, ok := c.View().Find("2025-03-10")
	if !ok || cell.More == nil {
		t.Fatalf("expected more target, got %#v", cell)
	}

	if err := c.Activate(ctx, cell.Events[1].TargetID); err != nil {
		t.Fatalf("Activate event: %v", err)
	}
	ov := c.Overlay().Overlay()
	if !ov.Open || len(ov.Entries) != 1 || ov.Entries[0].Title != "Two" {
		t.Fatalf("expected overlay scoped to one event, got %#v", ov)
	}

	c.CloseOverlay()
	if err := c.Activate(ctx, cell.More.TargetID); err != nil {
		t.Fatalf("Activate more: %v", err)
	}
	ov = c.Overlay().Overlay()
	titles := []string{}
	for _, e := range ov.Entries {
		titles = append(titles, e.Title)
	}
	if !reflect.DeepEqual(titles, []string{"One", "Two", "Three"}) {
		t.Fatalf("expected every event on the date, got %v", titles)
	}

	if err := c.Activate(ctx, "event:2025-03-10|Nope"); !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
	if err := c.Activate(ctx, "garbage"); !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestEditAndDelete_ThroughOverlay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, es, pr := newTestController(t)
	_ = c.Submit(ctx, Form{Date: "2025-03-10", Title: "Standup"})
	_ = c.Submit(ctx, Form{Date: "2025-03-11", Title: "Lunch"})

	c.OpenDate("2025-03-10")
	pr.text = "Daily"
	if err := c.EditEvent(ctx, model.EventKey{Date: "2025-03-10", Title: "Standup"}); err != nil {
		t.Fatalf("EditEvent: %v", err)
	}
	if c.Overlay().IsOpen() {
		t.Fatalf("expected overlay closed after edit")
	}
	cell, _ := c.View().Find("2025-03-10")
	if len(cell.Events) != 1 || cell.Events[0].Title != "Daily" {
		t.Fatalf("expected re-rendered title, got %#v", cell.Events)
	}

	pr.confirm = true
	c.OpenDate("2025-03-10")
	if err := c.DeleteEvent(ctx, model.EventKey{Date: "2025-03-10", Title: "Daily"}); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	all, _ := es.LoadAll(ctx)
	if len(calendar.EventsForDate(all, "2025-03-10")) != 0 {
		t.Fatalf("expected date cleared, got %#v", all)
	}
	if got := calendar.EventsForDate(all, "2025-03-11"); len(got) != 1 {
		t.Fatalf("expected other date untouched, got %#v", all)
	}
}

// The uniqueness invariant keeps (date, title) keys unambiguous: there is no
// sequence of adds/edits that yields two identical titles on one date.
func TestInvariant_NoTwoIdenticalTitlesOnADate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, es, pr := newTestController(t)
	_ = c.Submit(ctx, Form{Date: "2025-03-10", Title: "A"})
	_ = c.Submit(ctx, Form{Date: "2025-03-10", Title: "B"})
	_ = c.Submit(ctx, Form{Date: "2025-03-10", Title: "a"})

	c.OpenDate("2025-03-10")
	pr.text = "A"
	_ = c.EditEvent(ctx, model.EventKey{Date: "2025-03-10", Title: "B"})
	pr.text = "b"
	_ = c.EditEvent(ctx, model.EventKey{Date: "2025-03-10", Title: "A"})

	all, _ := es.LoadAll(ctx)
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if all[i].Date == all[j].Date && validate.EqualTitles(all[i].Title, all[j].Title) {
				t.Fatalf("invariant broken: %#v", all)
			}
		}
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events, got %#v", all)
	}
}
