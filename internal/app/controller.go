// Package app wires user actions (month navigation, form submission, clicks
// on rendered targets) to validation, persistence and re-rendering.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"monthcal/internal/calendar"
	"monthcal/internal/model"
	"monthcal/internal/presenter"
	"monthcal/internal/validate"

	"go.uber.org/zap"
)

var ErrUnknownTarget = errors.New("unknown target")

// Form is the add-event form.
type Form struct {
	Date  string
	Title string
}

// State is everything the controller renders from besides the store.
type State struct {
	Month calendar.Month
	Form  Form
}

type Options struct {
	Labels calendar.Labels
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
	// Month is the initially displayed month; zero means the current month.
	Month calendar.Month
	// Logger defaults to zap.L().
	Logger *zap.Logger
}

type Controller struct {
	events presenter.Events
	prompt presenter.UserPrompt
	labels calendar.Labels
	now    func() time.Time
	log    *zap.Logger

	state     State
	snapshot  []model.Event
	view      calendar.MonthView
	presenter *presenter.Presenter
}

func New(events presenter.Events, prompt presenter.UserPrompt, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if opts.Labels.Weekdays[0] == "" {
		opts.Labels = calendar.LabelsFor("")
	}
	now := opts.Now()
	month := opts.Month
	if month.Month == 0 {
		month = calendar.MonthOf(now)
	}
	c := &Controller{
		events: events,
		prompt: prompt,
		labels: opts.Labels,
		now:    opts.Now,
		log:    opts.Logger,
		state: State{
			Month: month,
			Form:  Form{Date: calendar.Today(now)},
		},
	}
	c.presenter = presenter.New(events, prompt, func(ctx context.Context) { c.Render(ctx) })
	c.presenter.Logger = c.log
	return c
}

func (c *Controller) State() State { return c.state }

// View is the last rendered month.
func (c *Controller) View() calendar.MonthView { return c.view }

func (c *Controller) Overlay() *presenter.Presenter { return c.presenter }

// Render rebuilds the month view from the store. A failed read is reported
// and rendered as an empty collection.
func (c *Controller) Render(ctx context.Context) calendar.MonthView {
	events, err := c.events.LoadAll(ctx)
	if err != nil {
		c.log.Warn("render with empty events after load failure", zap.Error(err))
		c.prompt.Notify("Could not load events. Showing an empty calendar.")
		events = []model.Event{}
	}
	c.snapshot = events
	c.view = calendar.BuildMonthView(c.state.Month, events, c.labels, calendar.Today(c.now()))
	return c.view
}

func (c *Controller) PrevMonth(ctx context.Context) calendar.MonthView {
	return c.ShiftMonth(ctx, -1)
}

func (c *Controller) NextMonth(ctx context.Context) calendar.MonthView {
	return c.ShiftMonth(ctx, 1)
}

func (c *Controller) ShiftMonth(ctx context.Context, delta int) calendar.MonthView {
	c.state.Month = c.state.Month.Shift(delta)
	return c.Render(ctx)
}

func (c *Controller) SetMonth(ctx context.Context, m calendar.Month) calendar.MonthView {
	c.state.Month = m
	return c.Render(ctx)
}

// SetForm stores the form as typed so far (no validation).
func (c *Controller) SetForm(f Form) {
	c.state.Form = f
}

// Submit validates f and appends it as a new event. On success the form is
// reset and its date defaults to today again; on failure the form keeps what
// the user typed.
func (c *Controller) Submit(ctx context.Context, f Form) error {
	c.state.Form = f
	title := strings.TrimSpace(f.Title)
	date := f.Date

	if err := validate.Title(title); err != nil {
		return c.fail(ctx, err, err.Error())
	}
	if err := validate.Date(date); err != nil {
		return c.fail(ctx, err, err.Error())
	}

	all, err := c.events.LoadAll(ctx)
	if err != nil {
		return c.fail(ctx, err, "Could not load events. The event was not saved.")
	}
	if _, dup := validate.FindDuplicate(all, date, title); dup {
		err := validate.Duplicate(date, title)
		return c.fail(ctx, err, err.Error())
	}

	all = append(all, model.Event{Date: date, Title: title})
	if err := c.events.SaveAll(ctx, all); err != nil {
		return c.fail(ctx, err, "Could not save the event. Please try again.")
	}

	c.log.Info("event added", zap.String("date", date), zap.String("title", title))
	c.Render(ctx)
	c.state.Form = Form{Date: calendar.Today(c.now())}
	return nil
}

// Activate routes a click on a rendered target. An event target opens the
// overlay with just that event; a "more" target opens every event on its date.
func (c *Controller) Activate(ctx context.Context, targetID string) error {
	tg, ok := calendar.ParseTarget(targetID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	}
	switch tg.Kind {
	case calendar.TargetEvent:
		for _, ev := range c.snapshot {
			if tg.Key.Matches(ev) {
				c.presenter.Open([]model.Event{ev}, ev.Date)
				return nil
			}
		}
		return fmt.Errorf("%w: %q", ErrUnknownTarget, targetID)
	default:
		c.OpenDate(tg.Date)
		return nil
	}
}

// OpenDate opens the overlay with every event on date from the last render.
func (c *Controller) OpenDate(date string) {
	c.presenter.Open(calendar.EventsForDate(c.snapshot, date), date)
}

// EditEvent and DeleteEvent forward overlay actions keyed by event identity.
func (c *Controller) EditEvent(ctx context.Context, key model.EventKey) error {
	return c.presenter.Edit(ctx, key)
}

func (c *Controller) DeleteEvent(ctx context.Context, key model.EventKey) error {
	return c.presenter.Delete(ctx, key)
}

func (c *Controller) CloseOverlay() {
	c.presenter.Close()
}

func (c *Controller) fail(ctx context.Context, err error, msg string) error {
	c.log.Warn("submit rejected", zap.Error(err))
	c.prompt.Notify(msg)
	return err
}
