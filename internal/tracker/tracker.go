// Package tracker owns the day's sectors, tasks and statistics history and
// keeps them persisted through a key-value store.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/stats"
	"github.com/sadopc/focusday/internal/store"
)

// ErrUnknownSector is reported by callers that need to reject a bad sector
// reference. Tracker operations themselves treat unknown ids as no-ops.
var ErrUnknownSector = errors.New("unknown sector")

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock in the local time zone.
var SystemClock Clock = systemClock{}

type Option func(*Tracker)

func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

func WithObserver(o Observer) Option {
	return func(t *Tracker) { t.observer = o }
}

// WithIDGenerator replaces uuid generation, for stable fixtures.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) { t.newID = fn }
}

// Tracker is safe for concurrent use. One mutex serialises every operation.
type Tracker struct {
	mu       sync.Mutex
	kv       store.KV
	slots    []config.SectorSlot
	clock    Clock
	logger   *slog.Logger
	observer Observer
	newID    func() string

	sectors   []domain.FocusSector
	history   []domain.DailyStats
	theme     domain.Theme
	lastReset string
	dirty     map[string]bool
}

// New loads persisted state from kv, falling back to defaults for absent or
// malformed values, and reconciles stored sectors with slots.
func New(ctx context.Context, kv store.KV, slots []config.SectorSlot, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		kv:       kv,
		slots:    slots,
		clock:    SystemClock,
		logger:   slog.New(slog.DiscardHandler),
		observer: NoopObserver{},
		newID:    uuid.NewString,
		theme:    domain.ThemeLight,
		dirty:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.load(ctx); err != nil {
		return nil, err
	}
	t.recomputeToday()
	return t, nil
}

// Sectors returns a deep copy of the sectors in configured order.
func (t *Tracker) Sectors() []domain.FocusSector {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CloneSectors(t.sectors)
}

// Sector returns a copy of the sector with id.
func (t *Tracker) Sector(id string) (domain.FocusSector, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.sectorIndex(id)
	if i < 0 {
		return domain.FocusSector{}, false
	}
	return domain.CloneSectors(t.sectors[i : i+1])[0], true
}

// Slots returns the configured schedule backing the sectors.
func (t *Tracker) Slots() []config.SectorSlot {
	return append([]config.SectorSlot(nil), t.slots...)
}

// History returns every stored DailyStats record, oldest first.
func (t *Tracker) History() []domain.DailyStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.DailyStats, len(t.history))
	for i, ds := range t.history {
		out[i] = cloneStats(ds)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Today returns the record for the clock's current date. When the date has
// rolled over without a mutation, a fresh snapshot is computed but not stored.
func (t *Tracker) Today() domain.DailyStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	date := domain.DateOf(now)
	if i := t.historyIndex(date); i >= 0 {
		return cloneStats(t.history[i])
	}
	ds := stats.Daily(t.sectors, date)
	ds.Streak = stats.Streak(append(append([]domain.DailyStats(nil), t.history...), ds), now)
	return ds
}

func (t *Tracker) Theme() domain.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

// LastResetDate is the date of the last daily reset, empty when none ran.
func (t *Tracker) LastResetDate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastReset
}

// Patterns analyses the trailing week of history.
func (t *Tracker) Patterns() stats.Patterns {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, len(t.sectors))
	for i, s := range t.sectors {
		ids[i] = s.ID
	}
	return stats.AnalyzePatterns(t.history, ids)
}

// Dirty reports whether some state has not been persisted yet.
func (t *Tracker) Dirty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.dirty) > 0
}

func (t *Tracker) sectorIndex(id string) int {
	for i, s := range t.sectors {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) historyIndex(date string) int {
	for i, ds := range t.history {
		if ds.Date == date {
			return i
		}
	}
	return -1
}

func cloneStats(ds domain.DailyStats) domain.DailyStats {
	out := ds
	out.FocusTime = cloneCounts(ds.FocusTime)
	out.EnergyFlow = cloneCounts(ds.EnergyFlow)
	if ds.DailyRating != nil {
		r := *ds.DailyRating
		out.DailyRating = &r
	}
	return out
}

func cloneCounts(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
