package cli

import (
	"fmt"
	"slices"
	"strings"

	"monthcal/internal/store"

	"github.com/spf13/cobra"
)

var configKeys = map[string][]string{
	"lang":   nil,
	"theme":  {"light", "dark", "auto"},
	"glyphs": {"unicode", "ascii"},
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change global preferences (config.json)",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print config.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.configDir()
			if err != nil {
				return err
			}
			cfg, err := store.LoadConfig(dir)
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			return writeData(cmd, app, cfg, map[string]any{"path": store.ConfigPath(dir)})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <lang|theme|glyphs> <value>",
		Short: "Set one preference",
		Example: strings.TrimSpace(`
  monthcal config set lang uk
  monthcal config set theme dark
  monthcal config set glyphs ascii
`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			val := strings.ToLower(strings.TrimSpace(args[1]))
			allowed, ok := configKeys[key]
			if !ok {
				return fmt.Errorf("unknown config key %q (want lang, theme or glyphs)", args[0])
			}
			if val == "" {
				return fmt.Errorf("%s: empty value", key)
			}
			if allowed != nil && !slices.Contains(allowed, val) {
				return fmt.Errorf("%s: invalid value %q (want %s)", key, args[1], strings.Join(allowed, "|"))
			}

			dir, err := app.configDir()
			if err != nil {
				return err
			}
			// Refuse to replace a config.json we could not parse.
			cfg, err := store.LoadConfig(dir)
			if err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			switch key {
			case "lang":
				cfg.Lang = val
			case "theme":
				if cfg.TUI == nil {
					cfg.TUI = &store.TUIConfig{}
				}
				cfg.TUI.Theme = val
			case "glyphs":
				if cfg.TUI == nil {
					cfg.TUI = &store.TUIConfig{}
				}
				cfg.TUI.Glyphs = val
			}
			if err := store.SaveConfig(dir, cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			return writeData(cmd, app, cfg, map[string]any{"path": store.ConfigPath(dir)})
		},
	}
}

func (a *App) configDir() (string, error) {
	if strings.TrimSpace(a.settings.ConfigDir) == "" {
		return "", fmt.Errorf("config dir unavailable (set MONTHCAL_CONFIG_DIR)")
	}
	return a.settings.ConfigDir, nil
}
