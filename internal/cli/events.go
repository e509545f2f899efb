package cli

import (
	"strings"

	"monthcal/internal/app"
	"monthcal/internal/calendar"
	"monthcal/internal/model"
	"monthcal/internal/validate"

	"github.com/spf13/cobra"
)

func newEventsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List, add, edit and delete events",
	}
	cmd.AddCommand(newEventsListCmd(app))
	cmd.AddCommand(newEventsAddCmd(app))
	cmd.AddCommand(newEventsEditCmd(app))
	cmd.AddCommand(newEventsDeleteCmd(app))
	return cmd
}

func newEventsListCmd(app *App) *cobra.Command {
	var date, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date != "" {
				if err := validate.Date(date); err != nil {
					return err
				}
			}
			if month != "" {
				m, err := calendar.ParseMonth(month)
				if err != nil {
					return err
				}
				month = m.String()
			}

			all, err := app.store().Events().LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			out := make([]model.Event, 0, len(all))
			for _, ev := range all {
				if date != "" && ev.Date != date {
					continue
				}
				if month != "" && !strings.HasPrefix(ev.Date, month+"-") {
					continue
				}
				out = append(out, ev)
			}
			return writeData(cmd, app, out, map[string]any{"count": len(out)})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Only events on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&month, "month", "", "Only events in this month (YYYY-MM)")
	return cmd
}

func newEventsAddCmd(app *App) *cobra.Command {
	var date, title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event (date defaults to today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := newStdioPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			ctrl := app.controller(prompt)

			form := ctrl.State().Form
			if cmd.Flags().Changed("date") {
				form.Date = date
			}
			form.Title = title
			if err := ctrl.Submit(cmd.Context(), form); err != nil {
				return err
			}
			return writeData(cmd, app, model.Event{Date: form.Date, Title: strings.TrimSpace(title)}, nil)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "Title (1-24 characters)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newEventsEditCmd(app *App) *cobra.Command {
	var date, title, to string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change an event's title",
		Long:  "Change the title of the event identified by --date and --title. Without --to the new title is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := newStdioPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			if cmd.Flags().Changed("to") {
				prompt.answer = &to
			}
			ctrl := app.controller(prompt)
			key := model.EventKey{Date: date, Title: title}
			if err := openFor(cmd, app, ctrl, key); err != nil {
				return err
			}

			if err := ctrl.EditEvent(cmd.Context(), key); err != nil {
				return describe(err, "event", key.String())
			}
			if ctrl.Overlay().IsOpen() {
				return cancelledError{action: "edit"}
			}
			return writeData(cmd, app, map[string]any{
				"date": date,
				"from": title,
				"to":   strings.TrimSpace(prompt.lastText),
			}, nil)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "Current title (exact)")
	cmd.Flags().StringVar(&to, "to", "", "New title")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newEventsDeleteCmd(app *App) *cobra.Command {
	var date, title string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event (asks first unless --yes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := newStdioPrompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			prompt.assumeYes = yes
			ctrl := app.controller(prompt)
			key := model.EventKey{Date: date, Title: title}
			if err := openFor(cmd, app, ctrl, key); err != nil {
				return err
			}

			if err := ctrl.DeleteEvent(cmd.Context(), key); err != nil {
				return describe(err, "event", key.String())
			}
			if ctrl.Overlay().IsOpen() {
				return cancelledError{action: "delete"}
			}
			return writeData(cmd, app, map[string]any{"deleted": model.Event{Date: date, Title: title}}, nil)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "Title (exact)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// openFor checks the store is readable, renders, and opens the overlay on
// key's date. A key missing from that overlay fails before any prompt.
func openFor(cmd *cobra.Command, a *App, ctrl *app.Controller, key model.EventKey) error {
	if err := validate.Date(key.Date); err != nil {
		return err
	}
	if _, err := a.store().Events().LoadAll(cmd.Context()); err != nil {
		return err
	}
	ctrl.Render(cmd.Context())
	ctrl.OpenDate(key.Date)
	for _, e := range ctrl.Overlay().Overlay().Entries {
		if e.Key == key {
			return nil
		}
	}
	ctrl.CloseOverlay()
	return errNotFound("event", key.String())
}
