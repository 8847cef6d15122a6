package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/stats"
	"github.com/sadopc/focusday/internal/store"
)

// Review ratings are clamped into this range.
const (
	MinRating = 1
	MaxRating = 10
)

// AddTask appends a new task to the sector. An unknown sector is a no-op and
// returns a nil task.
func (t *Tracker) AddTask(ctx context.Context, sectorID string, draft domain.TaskDraft) (_ *domain.Task, err error) {
	defer t.observe(ctx, "add_task", time.Now(), map[string]any{"sector": sectorID}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectorIndex(sectorID)
	if i < 0 {
		return nil, nil
	}
	priority := draft.Priority
	if !priority.Valid() {
		priority = domain.PriorityNormal
	}
	task := domain.Task{
		ID:            t.newID(),
		Text:          draft.Text,
		Completed:     false,
		CreatedAt:     t.clock.Now(),
		Priority:      priority,
		Progress:      0,
		EstimatedTime: max(0, draft.EstimatedTime),
		TimeSpent:     0,
		Notes:         draft.Notes,
	}
	t.sectors[i].Tasks = append(t.sectors[i].Tasks, task)

	out := task
	return &out, t.commit(ctx)
}

// UpdateTask applies patch to one task. Unknown ids are a no-op.
func (t *Tracker) UpdateTask(ctx context.Context, sectorID, taskID string, patch domain.TaskPatch) (err error) {
	defer t.observe(ctx, "update_task", time.Now(), map[string]any{"sector": sectorID, "task": taskID}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectorIndex(sectorID)
	if i < 0 {
		return nil
	}
	j := t.sectors[i].TaskIndex(taskID)
	if j < 0 {
		return nil
	}
	patch.Apply(&t.sectors[i].Tasks[j])
	return t.commit(ctx)
}

// DeleteTask removes one task. Unknown ids are a no-op.
func (t *Tracker) DeleteTask(ctx context.Context, sectorID, taskID string) (err error) {
	defer t.observe(ctx, "delete_task", time.Now(), map[string]any{"sector": sectorID, "task": taskID}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectorIndex(sectorID)
	if i < 0 {
		return nil
	}
	j := t.sectors[i].TaskIndex(taskID)
	if j < 0 {
		return nil
	}
	tasks := t.sectors[i].Tasks
	t.sectors[i].Tasks = append(tasks[:j:j], tasks[j+1:]...)
	return t.commit(ctx)
}

// UpdateSector edits the label and description of a sector.
func (t *Tracker) UpdateSector(ctx context.Context, sectorID string, patch domain.SectorPatch) (err error) {
	defer t.observe(ctx, "update_sector", time.Now(), map[string]any{"sector": sectorID}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.sectorIndex(sectorID)
	if i < 0 {
		return nil
	}
	patch.Apply(&t.sectors[i])
	return t.commit(ctx)
}

// ClampRating forces a review rating into [MinRating, MaxRating].
func ClampRating(rating int) int {
	return min(MaxRating, max(MinRating, rating))
}

// SaveDailyReview stores the rating and notes on the record for date,
// creating an empty record when none exists yet.
func (t *Tracker) SaveDailyReview(ctx context.Context, date string, rating int, notes string) (err error) {
	defer t.observe(ctx, "save_daily_review", time.Now(), map[string]any{"date": date, "rating": rating}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, perr := time.Parse(domain.DateLayout, date); perr != nil {
		return nil
	}
	if date == domain.DateOf(t.clock.Now()) {
		t.recomputeToday()
	}
	i := t.historyIndex(date)
	if i < 0 {
		ds := stats.Daily(nil, date)
		ds.ID = t.newID()
		t.history = append(t.history, ds)
		i = len(t.history) - 1
	}
	r := ClampRating(rating)
	t.history[i].DailyRating = &r
	t.history[i].Notes = notes
	return t.commit(ctx)
}

func (t *Tracker) SetTheme(ctx context.Context, theme domain.Theme) (err error) {
	defer t.observe(ctx, "set_theme", time.Now(), map[string]any{"theme": string(theme)}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	if !theme.Valid() {
		return nil
	}
	t.theme = theme
	t.dirty[store.KeyTheme] = true
	return t.flushLocked(ctx)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (t *Tracker) ToggleTheme(ctx context.Context) (_ domain.Theme, err error) {
	defer t.observe(ctx, "toggle_theme", time.Now(), nil, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	t.theme = t.theme.Toggle()
	t.dirty[store.KeyTheme] = true
	return t.theme, t.flushLocked(ctx)
}

// ResetDay clears every sector's tasks and records date as the last reset.
// It reports false without changes when date was already reset.
func (t *Tracker) ResetDay(ctx context.Context, date string) (_ bool, err error) {
	defer t.observe(ctx, "reset_day", time.Now(), map[string]any{"date": date}, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastReset == date {
		return false, nil
	}
	for i := range t.sectors {
		t.sectors[i].Tasks = []domain.Task{}
	}
	t.lastReset = date
	t.dirty[store.KeyLastResetDate] = true
	return true, t.commit(ctx)
}

// ClearAll deletes every persisted key and restores the default state.
func (t *Tracker) ClearAll(ctx context.Context) (err error) {
	defer t.observe(ctx, "clear_all", time.Now(), nil, &err)
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, key := range persistOrder {
		if err := t.kv.Clear(ctx, key); err != nil {
			// Earlier keys may be gone; rewrite the untouched state on the next flush.
			for _, k := range persistOrder {
				t.dirty[k] = true
			}
			return fmt.Errorf("clear all: %w", err)
		}
	}
	t.sectors = config.DefaultSectors(t.slots)
	t.history = nil
	t.theme = domain.ThemeLight
	t.lastReset = ""
	t.dirty = make(map[string]bool)
	return t.commit(ctx)
}
