package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxWidth = 60
	modalMinWidth = 24
)

// modalWidth picks the outer modal width for a screen of the given width.
func modalWidth(screenW int) int {
	w := screenW - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

// modalBodyWidth is the usable content width inside a modal box of width w
// (border and horizontal padding excluded).
func modalBodyWidth(w int) int {
	bw := w - 4
	if bw < 10 {
		bw = 10
	}
	return bw
}

func renderModalBox(width int, title string, body string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Width(bodyW).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Padding(0, 1).
		Render(fitLine(title, bodyW-2))

	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = fitLine(lines[i], bodyW)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Render(header + "\n\n" + strings.Join(lines, "\n"))
}

// placeModal centers box on a width x height screen and reports the box's
// top-left corner so mouse clicks can be hit-tested against it.
func placeModal(width, height int, box string) (s string, x, y int) {
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x = (width - bw) / 2
	y = (height - bh) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box), x, y
}
