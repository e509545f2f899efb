package main

import (
	"os"
	"regexp"
	"strings"

	"monthcal/internal/cli"
)

var (
	monthArg = regexp.MustCompile(`^\d{4}-\d{2}$`)
	dateArg  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// shortcutFor returns the subcommand a bare month or date expands to.
func shortcutFor(s string) []string {
	s = strings.TrimSpace(s)
	switch {
	case monthArg.MatchString(s):
		return []string{"month", s}
	case dateArg.MatchString(s):
		return []string{"events", "list", "--date", s}
	}
	return nil
}

func rewriteShortcutArgs(argv []string) []string {
	// Convenience: `monthcal 2025-03` works like `monthcal month 2025-03` and
	// `monthcal 2025-03-10` like `monthcal events list --date 2025-03-10`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
	// before parsing. Persistent flags may come first, so we look for the first
	// positional token rather than argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":    true,
		"--lang":   true,
		"--format": true,
	}

	rewrite := func(i int) []string {
		sc := shortcutFor(argv[i])
		if sc == nil {
			return argv
		}
		out := make([]string, 0, len(argv)+len(sc))
		out = append(out, argv[:i]...)
		out = append(out, sc...)
		out = append(out, argv[i+1:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && shortcutFor(argv[i+1]) != nil {
				out := make([]string, 0, len(argv)+3)
				out = append(out, argv[:i]...)
				out = append(out, shortcutFor(argv[i+1])...)
				out = append(out, argv[i+2:]...)
				return out
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		return rewrite(i)
	}
	return argv
}

func main() {
	os.Args = rewriteShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
