package cli

import (
	"fmt"
	"strings"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var priority, notes string
	var estimate int

	cmd := &cobra.Command{
		Use:   "add SECTOR TEXT...",
		Short: "Add a task to a sector",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSector(app.Tracker, args[0])
			if err != nil {
				return err
			}
			p, err := parsePriority(priority)
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return fmt.Errorf("task text is empty")
			}
			if estimate < 0 {
				return fmt.Errorf("--estimate must not be negative")
			}

			task, err := app.Tracker.AddTask(ctxOf(cmd), s.ID, domain.TaskDraft{
				Text:          text,
				Priority:      p,
				Notes:         notes,
				EstimatedTime: estimate,
			})
			if err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s (%s)\n", task.Text, s.Label, truncID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", string(domain.PriorityNormal), "urgent, important or normal")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done SECTOR TASK",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSector(app.Tracker, args[0])
			if err != nil {
				return err
			}
			task, err := resolveTask(s, args[1])
			if err != nil {
				return err
			}
			completed := !undo
			if err := app.Tracker.UpdateTask(ctxOf(cmd), s.ID, task.ID, domain.TaskPatch{Completed: &completed}); err != nil {
				return saveErr(err)
			}
			verb := "Completed"
			if undo {
				verb = "Reopened"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", verb, task.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task open again")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm SECTOR TASK",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSector(app.Tracker, args[0])
			if err != nil {
				return err
			}
			task, err := resolveTask(s, args[1])
			if err != nil {
				return err
			}
			if err := app.Tracker.DeleteTask(ctxOf(cmd), s.ID, task.ID); err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", task.Text)
			return nil
		},
	}
}

func newEditTaskCmd(app *App) *cobra.Command {
	var text, priority, notes string
	var spent, estimate, progress int

	cmd := &cobra.Command{
		Use:   "edit-task SECTOR TASK",
		Short: "Change a task's fields",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSector(app.Tracker, args[0])
			if err != nil {
				return err
			}
			task, err := resolveTask(s, args[1])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("text") {
				t := strings.TrimSpace(text)
				if t == "" {
					return fmt.Errorf("--text must not be empty")
				}
				patch.Text = &t
			}
			if flags.Changed("priority") {
				p, err := parsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if flags.Changed("notes") {
				patch.Notes = &notes
			}
			for name, v := range map[string]*int{"spent": &spent, "estimate": &estimate, "progress": &progress} {
				if flags.Changed(name) && *v < 0 {
					return fmt.Errorf("--%s must not be negative", name)
				}
			}
			if flags.Changed("spent") {
				patch.TimeSpent = &spent
			}
			if flags.Changed("estimate") {
				patch.EstimatedTime = &estimate
			}
			if flags.Changed("progress") {
				progress = min(100, progress)
				patch.Progress = &progress
			}
			if patch == (domain.TaskPatch{}) {
				return fmt.Errorf("nothing to change; pass at least one flag")
			}

			if err := app.Tracker.UpdateTask(ctxOf(cmd), s.ID, task.ID, patch); err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", truncID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "New task text")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "urgent, important or normal")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().IntVar(&spent, "spent", 0, "Minutes spent")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().IntVar(&progress, "progress", 0, "Progress percentage")
	return cmd
}

func newSectorCmd(app *App) *cobra.Command {
	var label, description string

	cmd := &cobra.Command{
		Use:   "sector SECTOR",
		Short: "Show or rename a sector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSector(app.Tracker, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			var patch domain.SectorPatch
			if cmd.Flags().Changed("label") {
				l := strings.TrimSpace(label)
				if l == "" {
					return fmt.Errorf("--label must not be empty")
				}
				patch.Label = &l
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			if patch.Label == nil && patch.Description == nil {
				fmt.Fprintf(w, "%s %s  %s\n%s\n", s.Icon, styleBold.Render(s.Label), s.IdealTime, styleDim.Render(s.Description))
				if rows := taskRows(s.Tasks, false); len(rows) > 0 {
					fmt.Fprint(w, renderTable([]string{"#", "ID", "", "TASK", "PRIORITY", "TIME"}, rows))
				}
				return nil
			}

			if err := app.Tracker.UpdateSector(ctxOf(cmd), s.ID, patch); err != nil {
				return saveErr(err)
			}
			fmt.Fprintf(w, "Updated sector %s\n", s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "New label")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}
