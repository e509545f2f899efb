package tui

import (
	"context"
	"time"

	"monthcal/internal/app"
	"monthcal/internal/calendar"
	"monthcal/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func newAppModel(ctx context.Context, s store.Store, opts Options) appModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	prompt := &tuiPrompt{}

	var month calendar.Month
	if st, err := s.LoadTUIState(); err == nil && st != nil && st.Month != 0 {
		month = calendar.Month{Year: st.Year, Month: time.Month(st.Month)}
	} else if err != nil {
		zap.L().Warn("load tui state", zap.Error(err))
	}

	ctrl := app.New(s.Events(), prompt, app.Options{
		Labels: calendar.LabelsFor(opts.Lang),
		Now:    opts.Now,
		Month:  month,
	})
	ctrl.Render(ctx)

	m := appModel{
		ctx:        ctx,
		store:      s,
		ctrl:       ctrl,
		prompt:     prompt,
		keys:       defaultKeyMap(),
		now:        opts.Now,
		width:      80,
		height:     30,
		target:     -1,
		formDate:   newInput("YYYY-MM-DD"),
		formTitle:  newInput("Title"),
		editInput:  newInput("Title"),
		modalBelow: modalNone,
	}
	m.cursor = m.defaultCursor()
	m.collectAlerts()
	return m
}

// inputCharLimit sits far above any valid value so that the validator, not
// the widget, reports oversized input with its real length.
const inputCharLimit = 1024

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = inputCharLimit
	return in
}

func (m appModel) Init() tea.Cmd { return nil }

// defaultCursor is today when today is in the displayed month, else the 1st.
func (m appModel) defaultCursor() string {
	today := calendar.Today(m.now())
	month := m.ctrl.State().Month
	if calendar.MonthOf(m.now()) == month {
		return today
	}
	return calendar.FormatDate(month.Year, month.Month, 1)
}

// collectAlerts moves queued notifications onto the alert modal.
func (m *appModel) collectAlerts() {
	notes := m.prompt.drain()
	if len(notes) == 0 {
		return
	}
	if m.modal != modalAlert {
		m.modalBelow = m.modal
		m.modal = modalAlert
	}
	m.alerts = append(m.alerts, notes...)
}

func (m appModel) saveState() {
	month := m.ctrl.State().Month
	err := m.store.SaveTUIState(&store.TUIState{
		Version: 1,
		Year:    month.Year,
		Month:   int(month.Month),
	})
	if err != nil {
		zap.L().Warn("save tui state", zap.Error(err))
	}
}
