package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/stats"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's metrics, the current sector and recent patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd.OutOrStdout(), app)
		},
	}
}

func printStatus(w io.Writer, app *App) error {
	today := app.Tracker.Today()
	var b strings.Builder

	if app.Controller != nil {
		if s, ok := app.Controller.CurrentSector(); ok {
			pending := len(s.Tasks) - s.Completed()
			fmt.Fprintf(&b, "Focus now   %s %s  %s\n",
				s.Icon, sectorStyle(s.Color).Bold(true).Render(s.Label), styleDim.Render(s.IdealTime))
			fmt.Fprintf(&b, "            %d task(s) waiting\n", pending)
		}
		fmt.Fprintf(&b, "Phase       %s\n", app.Controller.Phase())
	}

	fmt.Fprintf(&b, "\nTasks       %s done  %s pending  %d total\n",
		styleGreen.Render(fmt.Sprint(today.CompletedTasks)),
		styleYellow.Render(fmt.Sprint(today.PendingTasks)),
		today.TotalTasks)
	fmt.Fprintf(&b, "Completion  %s\n", renderProgress(today.CompletionRate, 20))
	fmt.Fprintf(&b, "Score       %d (%d pts)\n", today.ProductivityScore, today.ProductivityPoints)
	fmt.Fprintf(&b, "Vibe        %d\n", today.VibeScore)
	fmt.Fprintf(&b, "Efficiency  %d%% (%s of %s)\n",
		today.EfficiencyRate, formatMinutes(today.TotalTimeSpent), formatMinutes(today.TotalEstimatedTime))
	fmt.Fprintf(&b, "Streak      %d day(s)\n", today.Streak)
	if today.DailyRating != nil {
		fmt.Fprintf(&b, "Rating      %d/10", *today.DailyRating)
		if today.Notes != "" {
			fmt.Fprintf(&b, "  %s", styleDim.Render(today.Notes))
		}
		b.WriteString("\n")
	}

	p := app.Tracker.Patterns()
	if p.Days > 0 {
		best := p.BestSector
		if s, ok := app.Tracker.Sector(best); ok {
			best = s.Label
		}
		if best == "" {
			best = "none"
		}
		fmt.Fprintf(&b, "\nLast %d day(s): avg completion %.0f%%, consistency %d, vibe %s, best sector %s\n",
			p.Days, p.AverageCompletion, p.ConsistencyScore, trendLabel(p.VibeTrend), best)
	}

	_, err := fmt.Fprintln(w, renderBox("Today "+today.Date, strings.TrimRight(b.String(), "\n")))
	return err
}

func trendLabel(t stats.Trend) string {
	switch t {
	case stats.TrendImproving:
		return styleGreen.Render(string(t))
	case stats.TrendDeclining:
		return styleRed.Render(string(t))
	}
	return string(t)
}

func newSectorsCmd(app *App) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "sectors",
		Short: "List sectors and their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, s := range app.Tracker.Sectors() {
				fmt.Fprintf(w, "%d. %s %s  %s  %s  %d/%d\n",
					i+1, s.Icon, sectorStyle(s.Color).Bold(true).Render(s.Label),
					styleDim.Render(s.ID), s.IdealTime, s.Completed(), len(s.Tasks))

				rows := taskRows(s.Tasks, pendingOnly)
				if len(rows) > 0 {
					table := renderTable([]string{"#", "ID", "", "TASK", "PRIORITY", "TIME"}, rows)
					for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
						fmt.Fprintln(w, "   "+line)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Only show open tasks")
	return cmd
}

func taskRows(tasks []domain.Task, pendingOnly bool) [][]string {
	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		if pendingOnly && t.Completed {
			continue
		}
		check := "[ ]"
		text := t.Text
		if t.Completed {
			check = styleGreen.Render("[x]")
			text = styleDim.Render(text)
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			truncID(t.ID),
			check,
			text,
			priorityStyle(t.Priority).Render(string(t.Priority)),
			formatMinutes(t.TimeSpent) + "/" + formatMinutes(t.EstimatedTime),
		})
	}
	return rows
}
