package tui

import (
	"strings"
	"time"

	"monthcal/internal/app"
	"monthcal/internal/calendar"
	"monthcal/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal {
		case modalAlert:
			return m.updateAlert(msg)
		case modalHelp:
			return m.updateHelp(msg)
		case modalAdd:
			return m.updateAddForm(msg)
		case modalOverlay:
			return m.updateOverlay(msg)
		case modalEditTitle:
			return m.updateEditTitle(msg)
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateGrid(msg)
		}
	}
	return m, nil
}

func (m appModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.Today):
		m.ctrl.SetMonth(m.ctx, calendar.MonthOf(m.now()))
		m.cursor = calendar.Today(m.now())
		m.target = -1
	case key.Matches(msg, m.keys.NextTarget):
		m.cycleTarget(1)
	case key.Matches(msg, m.keys.PrevTarget):
		m.cycleTarget(-1)
	case key.Matches(msg, m.keys.Open):
		m.activate()
	case key.Matches(msg, m.keys.Add):
		m.openAddForm(m.ctrl.State().Form)
	case key.Matches(msg, m.keys.Help):
		m.modal = modalHelp
	}
	m.collectAlerts()
	return m, nil
}

// moveCursor moves the focused date by days, following it into the
// neighbouring month when it leaves the displayed one.
func (m *appModel) moveCursor(days int) {
	t, err := time.Parse(model.DateLayout, m.cursor)
	if err != nil {
		m.cursor = m.defaultCursor()
		return
	}
	t = t.AddDate(0, 0, days)
	m.cursor = t.Format(model.DateLayout)
	m.target = -1
	if mo := calendar.MonthOf(t); mo != m.ctrl.State().Month {
		m.ctrl.SetMonth(m.ctx, mo)
	}
}

// shiftMonth keeps the cursor's day of month, clamped to the new month.
func (m *appModel) shiftMonth(delta int) {
	day := 1
	if t, err := time.Parse(model.DateLayout, m.cursor); err == nil {
		day = t.Day()
	}
	m.ctrl.ShiftMonth(m.ctx, delta)
	mo := m.ctrl.State().Month
	if n := mo.Days(); day > n {
		day = n
	}
	m.cursor = calendar.FormatDate(mo.Year, mo.Month, day)
	m.target = -1
}

func (m *appModel) cycleTarget(dir int) {
	cell, ok := m.ctrl.View().Find(m.cursor)
	ids := cell.TargetIDs()
	if !ok || len(ids) == 0 {
		m.target = -1
		return
	}
	n := len(ids) + 1 // the day itself
	idx := (m.target + 1 + dir + n) % n
	m.target = idx - 1
}

// activate opens the focused target, or every event of the focused day. An
// empty day opens the add form on that date instead.
func (m *appModel) activate() {
	cell, ok := m.ctrl.View().Find(m.cursor)
	if !ok {
		return
	}
	if cell.Total == 0 {
		form := m.ctrl.State().Form
		form.Date = cell.Date
		m.openAddForm(form)
		return
	}
	ids := cell.TargetIDs()
	if m.target >= 0 && m.target < len(ids) {
		m.activateTarget(ids[m.target])
		return
	}
	m.ctrl.OpenDate(cell.Date)
	m.syncOverlayModal()
}

func (m *appModel) activateTarget(id string) {
	if err := m.ctrl.Activate(m.ctx, id); err != nil {
		zap.L().Warn("activate target", zap.String("target", id), zap.Error(err))
		m.prompt.Notify("That event is no longer available.")
		return
	}
	m.syncOverlayModal()
}

// syncOverlayModal shows the overlay modal while the presenter has it open.
func (m *appModel) syncOverlayModal() {
	if m.ctrl.Overlay().IsOpen() {
		if m.modal != modalOverlay {
			m.overlayIdx = 0
		}
		m.modal = modalOverlay
		if n := len(m.ctrl.Overlay().Overlay().Entries); m.overlayIdx >= n {
			m.overlayIdx = max(0, n-1)
		}
		return
	}
	m.modal = modalNone
	m.target = -1
}

func (m *appModel) openAddForm(f app.Form) {
	m.formDate.SetValue(f.Date)
	m.formTitle.SetValue(f.Title)
	m.formDate.CursorEnd()
	m.formTitle.CursorEnd()
	m.formFocus = formFieldTitle
	m.focusForm()
	m.modal = modalAdd
}

func (m *appModel) focusForm() {
	if m.formFocus == formFieldDate {
		m.formDate.Focus()
		m.formTitle.Blur()
		return
	}
	m.formTitle.Focus()
	m.formDate.Blur()
}

func (m appModel) formValues() app.Form {
	return app.Form{
		Date:  strings.TrimSpace(m.formDate.Value()),
		Title: m.formTitle.Value(),
	}
}

func (m appModel) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Keep what was typed for the next time the form opens.
		m.ctrl.SetForm(m.formValues())
		m.modal = modalNone
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.formFocus = 1 - m.formFocus
		m.focusForm()
		return m, nil
	case "enter":
		f := m.formValues()
		if err := m.ctrl.Submit(m.ctx, f); err != nil {
			m.collectAlerts()
			return m, nil
		}
		m.modal = modalNone
		if _, ok := m.ctrl.View().Find(f.Date); ok {
			m.cursor = f.Date
			m.target = -1
		}
		m.collectAlerts()
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == formFieldDate {
		m.formDate, cmd = m.formDate.Update(msg)
	} else {
		m.formTitle, cmd = m.formTitle.Update(msg)
	}
	return m, cmd
}

func (m appModel) selectedEntry() (model.EventKey, string, bool) {
	entries := m.ctrl.Overlay().Overlay().Entries
	if m.overlayIdx < 0 || m.overlayIdx >= len(entries) {
		return model.EventKey{}, "", false
	}
	e := entries[m.overlayIdx]
	return e.Key, e.Title, true
}

func (m appModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ov := m.ctrl.Overlay().Overlay()
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseOverlay()
		m.modal = modalNone
	case key.Matches(msg, m.keys.Up):
		if m.overlayIdx > 0 {
			m.overlayIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.overlayIdx < len(ov.Entries)-1 {
			m.overlayIdx++
		}
	case key.Matches(msg, m.keys.Edit):
		if k, title, ok := m.selectedEntry(); ok {
			m.editKey = k
			m.editInput.SetValue(title)
			m.editInput.CursorEnd()
			m.editInput.Focus()
			m.modal = modalEditTitle
		}
	case key.Matches(msg, m.keys.Delete):
		if k, _, ok := m.selectedEntry(); ok {
			m.editKey = k
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmDelete
		}
	case key.Matches(msg, m.keys.Add):
		m.ctrl.CloseOverlay()
		form := m.ctrl.State().Form
		form.Date = ov.Date
		m.openAddForm(form)
	}
	return m, nil
}

func (m appModel) updateEditTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.prompt.stageText("", false)
		_ = m.ctrl.EditEvent(m.ctx, m.editKey)
		m.editInput.Blur()
		m.syncOverlayModal()
		return m, nil
	case "enter":
		m.prompt.stageText(m.editInput.Value(), true)
		_ = m.ctrl.EditEvent(m.ctx, m.editKey)
		m.editInput.Blur()
		m.syncOverlayModal()
		m.collectAlerts()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "y":
		return m.decideDelete(true)
	case "n", "esc", "ctrl+g":
		return m.decideDelete(false)
	case "enter":
		return m.decideDelete(m.confirmFocus == confirmFocusConfirm)
	}
	return m, nil
}

func (m appModel) decideDelete(yes bool) (tea.Model, tea.Cmd) {
	m.prompt.stageConfirm(yes)
	_ = m.ctrl.DeleteEvent(m.ctx, m.editKey)
	m.syncOverlayModal()
	m.collectAlerts()
	return m, nil
}

func (m appModel) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ", "q", "ctrl+g":
		if len(m.alerts) > 0 {
			m.alerts = m.alerts[1:]
		}
		if len(m.alerts) == 0 {
			m.modal = m.modalBelow
			m.modalBelow = modalNone
		}
	}
	return m, nil
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter", "ctrl+g":
		m.modal = modalNone
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch m.modal {
	case modalOverlay:
		// A click outside the overlay dismisses it.
		box := m.overlayBox()
		_, x, y := placeModal(m.width, m.height, box)
		w, h := lipglossSize(box)
		if msg.X < x || msg.X >= x+w || msg.Y < y || msg.Y >= y+h {
			m.ctrl.CloseOverlay()
			m.modal = modalNone
		}
	case modalNone:
		m.clickGrid(msg.X, msg.Y)
		m.collectAlerts()
	}
	return m, nil
}

// clickGrid hit-tests a click against the header arrows and grid cells.
func (m *appModel) clickGrid(x, y int) {
	if y == 0 {
		prevW, nextX, nextW := m.headerHitAreas()
		switch {
		case x < prevW:
			m.shiftMonth(-1)
		case x >= nextX && x < nextX+nextW:
			m.shiftMonth(1)
		}
		return
	}

	row := y - gridHeadH - 1
	if row < 0 {
		return
	}
	week, line := row/weekStride, row%weekStride
	col := x / m.cellWidth()
	weeks := m.ctrl.View().Weeks
	if line >= cellLines || col > 6 || week >= len(weeks) {
		return
	}
	cell := weeks[week][col]
	if cell.Blank() {
		return
	}
	m.cursor = cell.Date
	m.target = -1

	switch {
	case line >= 1 && line-1 < len(cell.Events):
		m.target = line - 1
		m.activateTarget(cell.Events[line-1].TargetID)
	case line == cellLines-1 && cell.More != nil:
		m.target = len(cell.Events)
		m.activateTarget(cell.More.TargetID)
	}
}
