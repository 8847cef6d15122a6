package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/stats"
	"github.com/sadopc/focusday/internal/store"
)

// persistOrder fixes the order in which dirty keys are written.
var persistOrder = []string{
	store.KeySectors,
	store.KeyDailyStats,
	store.KeyTheme,
	store.KeyLastResetDate,
}

func (t *Tracker) load(ctx context.Context) error {
	var stored []domain.FocusSector
	found, err := t.loadJSON(ctx, store.KeySectors, &stored)
	if err != nil {
		return err
	}
	if !found {
		stored = nil
	}
	t.sectors = reconcile(stored, t.slots)

	var history []domain.DailyStats
	if found, err = t.loadJSON(ctx, store.KeyDailyStats, &history); err != nil {
		return err
	}
	if found {
		t.history = t.sanitizeHistory(history)
	}

	var theme domain.Theme
	if found, err = t.loadJSON(ctx, store.KeyTheme, &theme); err != nil {
		return err
	}
	if found && theme.Valid() {
		t.theme = theme
	} else if found {
		t.logger.Warn("unknown theme in store, using default", "theme", string(theme))
	}

	var last string
	if found, err = t.loadJSON(ctx, store.KeyLastResetDate, &last); err != nil {
		return err
	}
	if found {
		if _, perr := time.Parse(domain.DateLayout, last); perr == nil {
			t.lastReset = last
		} else {
			t.logger.Warn("malformed last reset date in store, ignoring", "value", last)
		}
	}
	return nil
}

// sanitizeHistory drops records with an unparseable date and keeps the last
// stored record for each date, sorted oldest first.
func (t *Tracker) sanitizeHistory(history []domain.DailyStats) []domain.DailyStats {
	byDate := make(map[string]int, len(history))
	out := make([]domain.DailyStats, 0, len(history))
	for _, ds := range history {
		if _, err := time.Parse(domain.DateLayout, ds.Date); err != nil {
			t.logger.Warn("malformed stats date in store, dropping record", "date", ds.Date)
			continue
		}
		if i, ok := byDate[ds.Date]; ok {
			t.logger.Warn("duplicate stats record in store, keeping the later one", "date", ds.Date)
			out[i] = ds
			continue
		}
		byDate[ds.Date] = len(out)
		out = append(out, ds)
	}
	if len(out) < len(history) {
		t.dirty[store.KeyDailyStats] = true
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// loadJSON decodes the value at key into dst. Missing and malformed values
// report found=false; only store failures are errors.
func (t *Tracker) loadJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := t.kv.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		t.logger.Warn("malformed value in store, using default", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// reconcile lays stored sectors over the configured slots. Known ids keep
// their label, description and tasks; unknown stored ids are dropped.
func reconcile(stored []domain.FocusSector, slots []config.SectorSlot) []domain.FocusSector {
	byID := make(map[string]domain.FocusSector, len(stored))
	for _, s := range stored {
		byID[s.ID] = s
	}
	sectors := config.DefaultSectors(slots)
	for i := range sectors {
		prev, ok := byID[sectors[i].ID]
		if !ok {
			continue
		}
		sectors[i].Label = prev.Label
		sectors[i].Description = prev.Description
		sectors[i].Tasks = append([]domain.Task{}, prev.Tasks...)
	}
	return sectors
}

// recomputeToday refreshes today's record from live sector state. The record
// keeps its id and review fields across recomputes.
func (t *Tracker) recomputeToday() {
	now := t.clock.Now()
	fresh := stats.Daily(t.sectors, domain.DateOf(now))

	i := t.historyIndex(fresh.Date)
	if i >= 0 {
		prev := t.history[i]
		fresh.ID = prev.ID
		fresh.DailyRating = prev.DailyRating
		fresh.Notes = prev.Notes
		t.history[i] = fresh
	} else {
		fresh.ID = t.newID()
		t.history = append(t.history, fresh)
		i = len(t.history) - 1
	}
	if t.history[i].ID == "" {
		t.history[i].ID = t.newID()
	}
	t.history[i].Streak = stats.Streak(t.history, now)
	t.dirty[store.KeyDailyStats] = true
}

// commit recomputes today's stats and persists sectors and history.
func (t *Tracker) commit(ctx context.Context) error {
	t.recomputeToday()
	t.dirty[store.KeySectors] = true
	return t.flushLocked(ctx)
}

// Flush writes any state a previous failed save left behind.
func (t *Tracker) Flush(ctx context.Context) (err error) {
	defer t.observe(ctx, "flush", time.Now(), nil, &err)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flushLocked(ctx)
}

func (t *Tracker) flushLocked(ctx context.Context) error {
	var errs []error
	for _, key := range persistOrder {
		if !t.dirty[key] {
			continue
		}
		if err := t.save(ctx, key); err != nil {
			errs = append(errs, err)
			continue
		}
		delete(t.dirty, key)
	}
	return errors.Join(errs...)
}

func (t *Tracker) save(ctx context.Context, key string) error {
	var v any
	switch key {
	case store.KeySectors:
		v = t.sectors
	case store.KeyDailyStats:
		v = t.history
	case store.KeyTheme:
		v = t.theme
	case store.KeyLastResetDate:
		if t.lastReset == "" {
			if err := t.kv.Clear(ctx, key); err != nil {
				return fmt.Errorf("clear %s: %w", key, err)
			}
			return nil
		}
		v = t.lastReset
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := t.kv.Save(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
