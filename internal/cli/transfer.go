package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"monthcal/internal/model"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the event collection as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			events := app.store().Events()
			if out == "" || out == "-" {
				_, err := events.Export(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			n, err := events.Export(cmd.Context(), f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			data := map[string]any{"path": out, "count": n}
			at, err := app.store().UpdatedAt(cmd.Context(), model.EventsKey)
			if err != nil {
				return err
			}
			if !at.IsZero() {
				data["updated_at"] = at.Format(time.RFC3339Nano)
			}
			return writeData(cmd, app, data, nil)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json|->",
		Short: "Append events from a JSON array, skipping invalid and duplicate entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			res, err := app.store().Events().Import(cmd.Context(), r)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			for _, sk := range res.Skipped {
				note(cmd.ErrOrStderr(), "skipped %s %q: %s", sk.Event.Date, sk.Event.Title, sk.Reason)
			}
			return writeData(cmd, app, res, nil)
		},
	}
	return cmd
}
