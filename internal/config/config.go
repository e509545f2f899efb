// Package config resolves runtime settings from a .env file, the process
// environment and the global config.json, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"monthcal/internal/store"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the MONTHCAL_* environment. Flags override these fields.
type Env struct {
	Dir       string `env:"MONTHCAL_DIR"`
	ConfigDir string `env:"MONTHCAL_CONFIG_DIR"`
	Lang      string `env:"MONTHCAL_LANG"`
	Format    string `env:"MONTHCAL_FORMAT" envDefault:"json"`
	LogFile   string `env:"MONTHCAL_LOG_FILE"`
	LogLevel  string `env:"MONTHCAL_LOG_LEVEL" envDefault:"info"`
	TUITheme  string `env:"MONTHCAL_TUI_THEME"`
}

// LoadDotEnv loads KEY=VALUE pairs from paths (default ".env") without
// overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}

// Settings is the merged view the commands run with.
type Settings struct {
	Env
	Glyphs string
}

// Resolve merges the environment with the global config file. Environment
// values win; the file only fills what the environment leaves empty. An
// unreadable config file is returned as an error alongside usable settings.
// On return ConfigDir holds the resolved directory of config.json.
func Resolve(e Env) (Settings, error) {
	s := Settings{Env: e}
	dir, err := store.ConfigDir(e.ConfigDir)
	if err != nil {
		return s, fmt.Errorf("config dir: %w", err)
	}
	s.ConfigDir = dir
	cfg, err := store.LoadConfig(dir)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	if strings.TrimSpace(s.Lang) == "" {
		s.Lang = cfg.Lang
	}
	if cfg.TUI != nil {
		if strings.TrimSpace(s.TUITheme) == "" {
			s.TUITheme = cfg.TUI.Theme
		}
		s.Glyphs = cfg.TUI.Glyphs
	}
	return s, nil
}
