// Package presenter manages the overlay listing a date's events and the
// edit/delete actions offered on each entry.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"monthcal/internal/model"
	"monthcal/internal/validate"

	"go.uber.org/zap"
)

// ErrNotFound is reported when the targeted (date, title) pair is no longer
// in the persisted collection.
var ErrNotFound = errors.New("event not found")

// UserPrompt is the dialog capability the presenter needs. Implementations
// block until the user answers (stdio) or replay an answer already collected
// by the UI (TUI).
type UserPrompt interface {
	// AskText returns the entered text, or ok=false when the user cancels.
	AskText(prompt, initial string) (text string, ok bool)
	Confirm(question string) bool
	Notify(message string)
}

// Events is the persisted collection the presenter mutates.
type Events interface {
	LoadAll(ctx context.Context) ([]model.Event, error)
	SaveAll(ctx context.Context, events []model.Event) error
}

type Entry struct {
	Key   model.EventKey
	Title string
}

// Overlay is what the modal currently shows.
type Overlay struct {
	Open    bool
	Date    string
	Entries []Entry
}

type Presenter struct {
	// Logger defaults to zap.L() when nil.
	Logger *zap.Logger

	events   Events
	prompt   UserPrompt
	rerender func(ctx context.Context)

	overlay Overlay
}

// New wires the presenter. rerender runs after every successful mutation; it
// may be nil.
func New(events Events, prompt UserPrompt, rerender func(ctx context.Context)) *Presenter {
	if rerender == nil {
		rerender = func(context.Context) {}
	}
	return &Presenter{events: events, prompt: prompt, rerender: rerender}
}

func (p *Presenter) log() *zap.Logger {
	if p.Logger == nil {
		return zap.L()
	}
	return p.Logger
}

// Open shows events for date. Only events on date are listed.
func (p *Presenter) Open(events []model.Event, date string) {
	entries := make([]Entry, 0, len(events))
	for _, ev := range events {
		if ev.Date != date {
			continue
		}
		entries = append(entries, Entry{Key: ev.Key(), Title: ev.Title})
	}
	p.overlay = Overlay{Open: true, Date: date, Entries: entries}
}

func (p *Presenter) Overlay() Overlay { return p.overlay }

func (p *Presenter) IsOpen() bool { return p.overlay.Open }

// Close dismisses the overlay without side effects.
func (p *Presenter) Close() {
	p.overlay = Overlay{}
}

// Edit asks for a new title for key and applies it. A cancelled prompt is a
// no-op. Every failure is reported through Notify, leaves the persisted
// collection untouched and keeps the overlay open.
func (p *Presenter) Edit(ctx context.Context, key model.EventKey) error {
	text, ok := p.prompt.AskText("Edit event title:", key.Title)
	if !ok {
		return nil
	}
	title := strings.TrimSpace(text)
	if err := validate.Title(title); err != nil {
		return p.fail(ctx, "edit", err, err.Error())
	}

	all, err := p.events.LoadAll(ctx)
	if err != nil {
		return p.fail(ctx, "edit", err, "Could not load events. Please try again.")
	}
	if _, dup := validate.FindDuplicate(all, key.Date, title, key.Title); dup {
		err := validate.Duplicate(key.Date, title)
		return p.fail(ctx, "edit", err, err.Error())
	}

	found := false
	updated := make([]model.Event, len(all))
	for i, ev := range all {
		if key.Matches(ev) {
			ev.Title = title
			found = true
		}
		updated[i] = ev
	}
	if !found {
		return p.fail(ctx, "edit", ErrNotFound, fmt.Sprintf("Event %q on %s no longer exists.", key.Title, key.Date))
	}
	if err := p.events.SaveAll(ctx, updated); err != nil {
		return p.fail(ctx, "edit", err, "Could not save the edited event. Please try again.")
	}

	p.log().Info("event edited", zap.String("date", key.Date), zap.String("from", key.Title), zap.String("to", title))
	p.rerender(ctx)
	p.Close()
	return nil
}

// Delete removes key after explicit confirmation.
func (p *Presenter) Delete(ctx context.Context, key model.EventKey) error {
	if !p.prompt.Confirm(fmt.Sprintf("Delete %q on %s?", key.Title, key.Date)) {
		return nil
	}

	all, err := p.events.LoadAll(ctx)
	if err != nil {
		return p.fail(ctx, "delete", err, "Could not load events. Please try again.")
	}
	kept := make([]model.Event, 0, len(all))
	for _, ev := range all {
		if !key.Matches(ev) {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(all) {
		return p.fail(ctx, "delete", ErrNotFound, fmt.Sprintf("Event %q on %s no longer exists.", key.Title, key.Date))
	}
	if err := p.events.SaveAll(ctx, kept); err != nil {
		return p.fail(ctx, "delete", err, "Could not delete the event. Please try again.")
	}

	p.log().Info("event deleted", zap.String("date", key.Date), zap.String("title", key.Title))
	p.rerender(ctx)
	p.Close()
	return nil
}

func (p *Presenter) fail(ctx context.Context, op string, err error, msg string) error {
	p.log().Warn("overlay action failed", zap.String("op", op), zap.Error(err))
	p.prompt.Notify(msg)
	return err
}
