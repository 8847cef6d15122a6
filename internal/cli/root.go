// Package cli exposes the tracker as a cobra command tree. Without a
// subcommand the interactive UI starts when stdin is a terminal.
package cli

import (
	"context"
	"fmt"

	"github.com/sadopc/focusday/internal/lifecycle"
	"github.com/sadopc/focusday/internal/store"
	"github.com/sadopc/focusday/internal/tracker"
	"github.com/spf13/cobra"
)

// App holds what the commands operate on.
type App struct {
	Tracker    *tracker.Tracker
	Controller *lifecycle.Controller
	// Store backs the keys command. Optional.
	Store Inspector

	// Interactive reports whether a terminal UI can run.
	Interactive func() bool
	// RunTUI runs the interactive UI until the user quits.
	RunTUI func(ctx context.Context) error
}

// Inspector lists raw persisted entries.
type Inspector interface {
	Entries(ctx context.Context) ([]store.Entry, error)
}

func (a *App) interactive() bool {
	return a.Interactive != nil && a.Interactive() && a.RunTUI != nil
}

// NewRootCmd creates the top-level "focusday" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "focusday",
		Short:         "Time-blocked daily focus tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefault(cmd, app)
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newStatusCmd(app),
		newSectorsCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newEditTaskCmd(app),
		newSectorCmd(app),
		newReviewCmd(app),
		newThemeCmd(app),
		newExportCmd(app),
		newResetAllCmd(app),
		newTickCmd(app),
		newKeysCmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDefault(cmd, app)
		},
	}
}

// runDefault opens the UI on a terminal and falls back to the status report
// when output is piped.
func runDefault(cmd *cobra.Command, app *App) error {
	if app.interactive() {
		return app.RunTUI(cmd.Context())
	}
	return printStatus(cmd.OutOrStdout(), app)
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// saveErr reports a write that changed state in memory but failed to persist.
func saveErr(err error) error {
	return fmt.Errorf("change applied but not saved: %w", err)
}
