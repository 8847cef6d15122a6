package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sadopc/focusday/internal/cli"
	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/lifecycle"
	"github.com/sadopc/focusday/internal/store"
	"github.com/sadopc/focusday/internal/tracker"
	"github.com/sadopc/focusday/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("FOCUSDAY_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.DBPath == "" {
		if cfg.DBPath, err = store.DefaultDBPath(); err != nil {
			return fmt.Errorf("finding database path: %w", err)
		}
	}

	logOut, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	s, err := store.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := tracker.New(ctx, s, cfg.Sectors,
		tracker.WithLogger(logger),
		tracker.WithObserver(tracker.NewLogObserver(logOut, cfg.SlogLevel())),
	)
	if err != nil {
		return err
	}
	// Persist today's recomputed record; later writes retry if this fails.
	if err := tr.Flush(ctx); err != nil {
		logger.WarnContext(ctx, "initial flush failed", "error", err)
	}

	ctl := lifecycle.New(tr, cfg.Sectors, cfg.Lifecycle, lifecycle.WithLogger(logger))

	app := &cli.App{
		Tracker:    tr,
		Controller: ctl,
		Store:      s,
	}

	// Detect interactive terminal for the default entrypoint.
	app.Interactive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.RunTUI = func(ctx context.Context) error {
		ctl.Start(ctx)
		defer ctl.Stop()

		p := tea.NewProgram(tui.NewApp(tr, ctl), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		if flushErr := tr.Flush(context.Background()); flushErr != nil {
			logger.Error("final flush failed", "error", flushErr)
			if err == nil {
				err = fmt.Errorf("saving on exit: %w", flushErr)
			}
		}
		return err
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openLog opens the configured log file so the terminal UI stays clean.
// Without a log path, logs are discarded.
func openLog(cfg *config.Config) (io.Writer, func(), error) {
	if cfg.LogPath == "" {
		return io.Discard, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
