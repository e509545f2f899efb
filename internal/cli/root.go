package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"monthcal/internal/app"
	"monthcal/internal/calendar"
	"monthcal/internal/config"
	"monthcal/internal/format"
	"monthcal/internal/store"
	"monthcal/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Lang       string
	PrettyJSON bool
	Format     string

	env      config.Env
	settings config.Settings
	logger   *zap.Logger
	// now is pinned by tests.
	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{now: time.Now})
}

func newRootCmd(app *App) *cobra.Command {
	envErr := config.LoadDotEnv()
	if envErr == nil {
		app.env, envErr = config.ParseEnv()
	}

	cmd := &cobra.Command{
		Use:          "monthcal",
		Short:        "Local-first month calendar (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive calendar
  monthcal

  # Print a month (shortcut for: monthcal month 2025-03)
  monthcal 2025-03

  # List a day's events (shortcut for: monthcal events list --date 2025-03-10)
  monthcal 2025-03-10

  # Add an event
  monthcal events add --date 2025-03-10 --title "Standup"
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return app.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", app.env.Dir, "Data directory (default: ~/.monthcal/data)")
	cmd.PersistentFlags().StringVar(&app.Lang, "lang", app.env.Lang, "Label language (en|uk)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", app.env.Format, "Output format (json|edn)")

	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newEventsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup runs once per invocation, after flags are parsed.
func (a *App) setup() error {
	logger, err := config.NewLogger(a.env)
	if err != nil {
		return err
	}
	a.logger = logger
	zap.ReplaceGlobals(logger)

	settings, err := config.Resolve(a.env)
	if err != nil {
		// A broken config.json only loses preferences.
		logger.Warn("ignoring global config", zap.Error(err))
	}
	a.settings = settings
	if strings.TrimSpace(a.Lang) == "" {
		a.Lang = settings.Lang
	}

	f, err := format.Normalize(a.Format)
	if err != nil {
		return err
	}
	a.Format = f

	dir, err := store.ResolveDir(a.Dir, a.settings.ConfigDir)
	if err != nil {
		return err
	}
	a.Dir = dir
	return nil
}

func (a *App) store() store.Store {
	return store.Store{Dir: a.Dir}
}

// controller builds an app controller over the data dir, answering prompts
// through p.
func (a *App) controller(p *stdioPrompt) *app.Controller {
	return app.New(a.store().Events(), p, app.Options{
		Labels: calendar.LabelsFor(a.Lang),
		Now:    a.now,
		Logger: a.logger,
	})
}

func runTUI(ctx context.Context, a *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return tui.Run(ctx, a.store(), tui.Options{
		Lang:   a.Lang,
		Theme:  a.settings.TUITheme,
		Glyphs: a.settings.Glyphs,
		Now:    a.now,
	})
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeData(cmd *cobra.Command, app *App, data any, meta map[string]any) error {
	return writeOut(cmd, app, format.Envelope{Data: data, Meta: meta})
}

func note(w io.Writer, msg string, args ...any) {
	fmt.Fprintf(w, msg+"\n", args...)
}
