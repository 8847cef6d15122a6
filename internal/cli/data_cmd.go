package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/focusday/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the daily history to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("focusday-export-%s.%s", app.Tracker.Today().Date, f)
			}
			history := app.Tracker.History()
			if err := export.Write(history, f, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d day(s) to %s\n", len(history), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatCSV), "csv, json or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path")
	return cmd
}

func newResetAllCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-all",
		Short: "Delete all tasks, history and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear data without --yes")
			}
			if err := app.Tracker.ClearAll(ctxOf(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing everything")
	return cmd
}

func newTickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Run one daily-reset check (for cron)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Controller == nil {
				return errors.New("lifecycle controller is not configured")
			}
			reset, err := app.Controller.Tick(ctxOf(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if reset {
				fmt.Fprintf(w, "Day reset for %s\n", app.Tracker.LastResetDate())
			} else {
				fmt.Fprintln(w, "Nothing to do")
			}
			if app.Controller.ReviewDue() {
				fmt.Fprintln(w, "Daily review is due: focusday review <1-10>")
			}
			return nil
		},
	}
}

func newKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:    "keys",
		Short:  "List stored keys with their size and last write",
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return errors.New("store is not configured")
			}
			entries, err := app.Store.Entries(ctxOf(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "No stored keys")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Key,
					fmt.Sprintf("%d B", len(e.Value)),
					e.UpdatedAt.Local().Format(time.DateTime),
				})
			}
			fmt.Fprintln(w, renderTable([]string{"KEY", "SIZE", "UPDATED"}, rows))
			return nil
		},
	}
}
