package cli

import (
	"fmt"
	"io"
	"strings"

	"monthcal/internal/calendar"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

const textCellWidth = 14

func newMonthCmd(app *App) *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month grid (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := newStdioPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			ctrl := app.controller(prompt)
			var view calendar.MonthView
			if len(args) == 1 {
				m, err := calendar.ParseMonth(args[0])
				if err != nil {
					return err
				}
				view = ctrl.SetMonth(cmd.Context(), m)
			} else {
				view = ctrl.Render(cmd.Context())
			}
			prompt.flush(cmd.ErrOrStderr())
			if text {
				return writeMonthText(cmd.OutOrStdout(), view)
			}
			return writeData(cmd, app, view, map[string]any{"month": view.Month.String()})
		},
	}
	cmd.Flags().BoolVar(&text, "text", false, "Print the grid as plain text")
	return cmd
}

// writeMonthText prints the month as a fixed-width text grid: a day-number
// line per cell followed by its visible events and "+N more" label.
func writeMonthText(w io.Writer, v calendar.MonthView) error {
	var b strings.Builder
	gridW := textCellWidth * 7
	title := v.Title
	pad := (gridW - xansi.StringWidth(title)) / 2
	b.WriteString(strings.Repeat(" ", max(0, pad)) + title + "\n")

	for _, name := range v.Weekdays {
		b.WriteString(textCell(name))
	}
	b.WriteString("\n" + strings.Repeat("-", gridW) + "\n")

	for _, week := range v.Weeks {
		for line := 0; line < calendar.MaxVisibleEvents+2; line++ {
			var row strings.Builder
			for _, c := range week {
				row.WriteString(textCell(cellTextLine(c, line)))
			}
			b.WriteString(strings.TrimRight(row.String(), " ") + "\n")
		}
		b.WriteString(strings.Repeat("-", gridW) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cellTextLine(c calendar.CellView, line int) string {
	if c.Blank() {
		return ""
	}
	switch {
	case line == 0:
		s := fmt.Sprintf("%2d", c.Day)
		if c.Today {
			s += " *"
		}
		return s
	case line-1 < len(c.Events):
		return "- " + c.Events[line-1].Title
	case line == calendar.MaxVisibleEvents+1 && c.More != nil:
		return c.More.Label
	}
	return ""
}

// textCell fits s into one column of the text grid with a trailing gap.
func textCell(s string) string {
	inner := textCellWidth - 1
	if xansi.StringWidth(s) > inner {
		s = xansi.Truncate(s, inner, "~")
	}
	return s + strings.Repeat(" ", textCellWidth-xansi.StringWidth(s))
}
