package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/tracker"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "review RATING [NOTES...]",
		Short: "Rate the day from 1 to 10",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rating must be a number: %q", args[0])
			}
			if date == "" {
				date = app.Tracker.Today().Date
			} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
				return fmt.Errorf("--date must be YYYY-MM-DD: %q", date)
			}
			notes := strings.TrimSpace(strings.Join(args[1:], " "))

			if err := app.Tracker.SaveDailyReview(ctxOf(cmd), date, rating, notes); err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rated %s %d/%d\n", date, tracker.ClampRating(rating), tracker.MaxRating)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to rate (YYYY-MM-DD), defaults to today")
	return cmd
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the UI theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeDark), string(domain.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(w, app.Tracker.Theme())
				return nil
			}
			theme := domain.Theme(strings.ToLower(args[0]))
			if !theme.Valid() {
				return fmt.Errorf("unknown theme %q (want dark or light)", args[0])
			}
			if err := app.Tracker.SetTheme(ctxOf(cmd), theme); err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(w, "Theme set to %s\n", theme)
			return nil
		},
	}
}
