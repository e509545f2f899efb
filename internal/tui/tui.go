package tui

import (
	"context"
	"time"

	"monthcal/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the interactive calendar.
type Options struct {
	Lang   string
	Theme  string // light|dark|auto
	Glyphs string // unicode|ascii
	Now    func() time.Time
}

func Run(ctx context.Context, s store.Store, opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference()
	applyGlyphPreference(opts.Glyphs)

	if err := s.Ensure(); err != nil {
		return err
	}
	m := newAppModel(ctx, s, opts)
	final, err := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	).Run()
	if fm, ok := final.(appModel); ok {
		fm.saveState()
	}
	return err
}
