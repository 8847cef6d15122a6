// Package lifecycle drives the daily reset and the end-of-day review prompt.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DayState is the slice of the tracker the controller reads and resets.
type DayState interface {
	LastResetDate() string
	ResetDay(ctx context.Context, date string) (bool, error)
	Today() domain.DailyStats
	Sectors() []domain.FocusSector
}

// Phase is the position in the per-day state machine.
type Phase string

const (
	PhaseActive         Phase = "active"
	PhaseReviewEligible Phase = "review-eligible"
	PhaseReviewed       Phase = "reviewed"
)

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// Controller samples the clock and fires the day's transitions.
// Start and Stop must be called from the same goroutine.
type Controller struct {
	day    DayState
	slots  []config.SectorSlot
	cfg    config.LifecycleConfig
	clock  Clock
	logger *slog.Logger

	reviewShown atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
}

func New(day DayState, slots []config.SectorSlot, cfg config.LifecycleConfig, opts ...Option) *Controller {
	c := &Controller{
		day:    day,
		slots:  slots,
		cfg:    cfg,
		clock:  systemClock{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tick runs the reset check once. It resets when the clock is inside the
// reset window and today has not been reset yet.
func (c *Controller) Tick(ctx context.Context) (bool, error) {
	now := c.clock.Now()
	if !c.inResetWindow(now) {
		return false, nil
	}
	today := domain.DateOf(now)
	if c.day.LastResetDate() == today {
		return false, nil
	}

	reset, err := c.day.ResetDay(ctx, today)
	if err != nil {
		return reset, fmt.Errorf("daily reset %s: %w", today, err)
	}
	if reset {
		c.reviewShown.Store(false)
		c.logger.InfoContext(ctx, "daily reset", "date", today)
	}
	return reset, nil
}

// inResetWindow compares at minute granularity, so the whole last minute of
// the window still counts.
func (c *Controller) inResetWindow(now time.Time) bool {
	y, m, d := now.Date()
	start := time.Date(y, m, d, c.cfg.ResetHour, 0, 0, 0, now.Location())
	elapsed := now.Sub(start)
	return elapsed >= 0 && elapsed.Truncate(time.Minute) <= c.cfg.ResetWindow
}

// Start ticks once, then keeps ticking every TickInterval until ctx is
// canceled or Stop is called. A second Start without Stop is ignored.
func (c *Controller) Start(ctx context.Context) {
	if c.done != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	c.tick(ctx)
	go c.loop(ctx, c.done)
}

// Stop cancels the ticker and waits for it to exit. Safe to call repeatedly.
func (c *Controller) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.cancel = nil
	c.done = nil
}

func (c *Controller) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

func (c *Controller) tick(ctx context.Context) {
	if _, err := c.Tick(ctx); err != nil {
		c.logger.ErrorContext(ctx, "lifecycle tick failed", "error", err)
	}
}

// ReviewDue reports whether the end-of-day review should be offered now.
func (c *Controller) ReviewDue() bool {
	if c.reviewShown.Load() {
		return false
	}
	return c.Phase() == PhaseReviewEligible
}

// MarkReviewShown suppresses ReviewDue for the rest of the session.
func (c *Controller) MarkReviewShown() {
	c.reviewShown.Store(true)
}

func (c *Controller) Phase() Phase {
	if c.day.Today().Rated() {
		return PhaseReviewed
	}
	if c.clock.Now().Hour() >= c.cfg.ReviewHour {
		return PhaseReviewEligible
	}
	return PhaseActive
}

// CurrentSector is the sector whose slot contains the clock's hour.
func (c *Controller) CurrentSector() (domain.FocusSector, bool) {
	return CurrentSector(c.day.Sectors(), c.slots, c.clock.Now().Hour())
}

// CurrentSector evaluates slots in order; the first slot containing hour
// wins. Without a match it falls back to the first sector.
func CurrentSector(sectors []domain.FocusSector, slots []config.SectorSlot, hour int) (domain.FocusSector, bool) {
	if len(sectors) == 0 {
		return domain.FocusSector{}, false
	}
	for _, slot := range slots {
		if !slot.Contains(hour) {
			continue
		}
		for _, s := range sectors {
			if s.ID == slot.ID {
				return s, true
			}
		}
	}
	return sectors[0], true
}
