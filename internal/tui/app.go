package tui

import (
	"fmt"
	"strings"

	"monthcal/internal/calendar"
	"monthcal/internal/docs"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	var box string
	switch m.modal {
	case modalNone:
		return m.viewGrid()
	case modalAdd:
		box = m.addFormBox()
	case modalOverlay:
		box = m.overlayBox()
	case modalEditTitle:
		box = m.editTitleBox()
	case modalConfirmDelete:
		box = renderConfirmModal(modalWidth(m.width), "Delete event",
			fmt.Sprintf("Delete %q on %s?", m.editKey.Title, m.editKey.Date),
			"Delete", "Cancel", m.confirmFocus)
	case modalAlert:
		box = m.alertBox()
	case modalHelp:
		box = m.helpBox()
	}
	s, _, _ := placeModal(m.width, m.height, box)
	return s
}

func (m appModel) cellWidth() int {
	return max(minCellW, m.width/7)
}

func lipglossSize(s string) (int, int) {
	return lipgloss.Width(s), lipgloss.Height(s)
}

// headerHitAreas reports the clickable columns of the month header: the
// prev arrow spans [0, prevW) and the next arrow [nextX, nextX+nextW).
func (m appModel) headerHitAreas() (prevW, nextX, nextW int) {
	prev := " " + glyphPrev() + " "
	next := " " + glyphNext() + " "
	title := " " + m.ctrl.View().Title + " "
	prevW = xansi.StringWidth(prev)
	return prevW, prevW + xansi.StringWidth(title), xansi.StringWidth(next)
}

func (m appModel) viewGrid() string {
	v := m.ctrl.View()
	cw := m.cellWidth()
	gridW := cw * 7

	arrow := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
	header := arrow.Render(" "+glyphPrev()+" ") + title.Render(" "+v.Title+" ") + arrow.Render(" "+glyphNext()+" ")

	weekdayStyle := lipgloss.NewStyle().Bold(true).Foreground(colorChromeMutedFg)
	var wd strings.Builder
	for _, name := range v.Weekdays {
		wd.WriteString(weekdayStyle.Render(fitLine(" "+name, cw)))
	}

	rule := lipgloss.NewStyle().Foreground(colorCellBorder).Render(strings.Repeat("─", gridW))
	if glyphs() == glyphSetASCII {
		rule = lipgloss.NewStyle().Foreground(colorCellBorder).Render(strings.Repeat("-", gridW))
	}

	lines := []string{header, "", wd.String(), rule}
	for _, week := range v.Weeks {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, m.renderCell(c, cw))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...), rule)
	}

	body := strings.Join(lines, "\n")
	footer := styleMuted().Render(fitLine(m.footerText(), m.width))
	bodyH := max(0, m.height-footerH)
	return normalizePane(body, m.width, bodyH) + "\n" + footer
}

func (m appModel) footerText() string {
	parts := make([]string, 0, 8)
	for _, b := range m.keys.footerHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return " " + strings.Join(parts, "  ")
}

func (m appModel) renderCell(c calendar.CellView, w int) string {
	if c.Blank() {
		return normalizePane("", w, cellLines)
	}
	focused := c.Date == m.cursor

	base := lipgloss.NewStyle()
	if focused {
		base = base.Background(colorSelectedBg).Foreground(colorSelectedFg)
	}
	selected := lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg)

	dayStyle := base
	if c.Today {
		dayStyle = dayStyle.Foreground(colorTodayFg).Bold(true)
	}
	out := []string{dayStyle.Render(fitLine(fmt.Sprintf(" %2d", c.Day), w))}

	for i, ev := range c.Events {
		st := base.Foreground(colorEventFg)
		if focused && m.target == i {
			st = selected
		}
		out = append(out, st.Render(fitLine(" "+glyphBullet()+" "+ev.Title, w)))
	}
	for len(out) < cellLines-1 {
		out = append(out, base.Render(fitLine("", w)))
	}

	moreLine := base.Render(fitLine("", w))
	if c.More != nil {
		st := base.Foreground(colorMoreFg)
		if focused && m.target == len(c.Events) {
			st = selected
		}
		moreLine = st.Render(fitLine(" "+c.More.Label, w))
	}
	out = append(out, moreLine)
	return strings.Join(out, "\n")
}

func (m appModel) addFormBox() string {
	w := modalWidth(m.width)
	bodyW := modalBodyWidth(w)
	label := func(s string, active bool) string {
		st := styleMuted()
		if active {
			st = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		}
		return st.Render(s)
	}
	body := strings.Join([]string{
		label("Date", m.formFocus == formFieldDate),
		renderInputLine(bodyW, m.formDate.View()),
		"",
		label("Title", m.formFocus == formFieldTitle),
		renderInputLine(bodyW, m.formTitle.View()),
		"",
		styleMuted().Render("tab: switch field   enter: save   esc: cancel"),
	}, "\n")
	return renderModalBox(w, "Add event", body)
}

func (m appModel) overlayBox() string {
	w := modalWidth(m.width)
	ov := m.ctrl.Overlay().Overlay()

	var lines []string
	if len(ov.Entries) == 0 {
		lines = append(lines, styleMuted().Render("No events."))
	}
	selected := lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
	for i, e := range ov.Entries {
		ln := " " + glyphBullet() + " " + e.Title
		if i == m.overlayIdx {
			ln = selected.Render(fitLine(ln, modalBodyWidth(w)))
		}
		lines = append(lines, ln)
	}
	lines = append(lines, "", styleMuted().Render("↑/↓: select   e: edit   d: delete   a: add   esc: close"))
	return renderModalBox(w, "Events on "+ov.Date, strings.Join(lines, "\n"))
}

func (m appModel) editTitleBox() string {
	w := modalWidth(m.width)
	body := strings.Join([]string{
		renderInputLine(modalBodyWidth(w), m.editInput.View()),
		"",
		styleMuted().Render("enter: save   esc: cancel"),
	}, "\n")
	return renderModalBox(w, "Edit event title:", body)
}

func (m appModel) alertBox() string {
	w := modalWidth(m.width)
	msg := ""
	if len(m.alerts) > 0 {
		msg = m.alerts[0]
	}
	badge := lipgloss.NewStyle().Background(colorAlertBg).Foreground(colorAlertFg).Bold(true).Padding(0, 1).Render("!")
	body := lipgloss.NewStyle().Width(modalBodyWidth(w)).Render(badge + " " + msg)
	hint := "enter: dismiss"
	if n := len(m.alerts); n > 1 {
		hint = fmt.Sprintf("enter: next (%d more)", n-1)
	}
	return renderModalBox(w, "Notice", body+"\n\n"+styleMuted().Render(hint))
}

func (m appModel) helpBox() string {
	w := modalWidth(m.width)
	md, ok := docs.Get("keys")
	if !ok {
		md = "No help available."
	}
	return renderModalBox(w, "Keys", renderMarkdown(md, modalBodyWidth(w)))
}
