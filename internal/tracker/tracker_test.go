package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/store"
	"github.com/sadopc/focusday/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = testutil.At(2024, time.March, 15, 10, 0)

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingObserver) Observe(_ context.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func newTestTracker(t *testing.T, kv store.KV, opts ...Option) (*Tracker, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(testNow)
	opts = append([]Option{WithClock(clock)}, opts...)
	tr, err := New(context.Background(), kv, config.DefaultSchedule(), opts...)
	require.NoError(t, err)
	return tr, clock
}

func addTask(t *testing.T, tr *Tracker, sectorID, text string, p domain.Priority) domain.Task {
	t.Helper()
	task, err := tr.AddTask(context.Background(), sectorID, domain.TaskDraft{Text: text, Priority: p})
	require.NoError(t, err)
	require.NotNil(t, task)
	return *task
}

// ============ LOAD ============

func TestNew_EmptyStoreUsesDefaults(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())

	assert.Equal(t, config.DefaultSectors(config.DefaultSchedule()), tr.Sectors())
	assert.Equal(t, domain.ThemeLight, tr.Theme())
	assert.Empty(t, tr.LastResetDate())

	history := tr.History()
	require.Len(t, history, 1)
	assert.Equal(t, "2024-03-15", history[0].Date)
	assert.Equal(t, 0, history[0].TotalTasks)
	assert.NotEmpty(t, history[0].ID)
	assert.True(t, tr.Dirty(), "recomputed stats are not saved until a mutation or flush")
}

func TestNew_MalformedValuesFallBack(t *testing.T) {
	kv := testutil.NewFailingKV()
	kv.Put(store.KeySectors, "{not json")
	kv.Put(store.KeyDailyStats, "[")
	kv.Put(store.KeyTheme, `"neon"`)
	kv.Put(store.KeyLastResetDate, `"yesterday"`)

	tr, _ := newTestTracker(t, kv)

	assert.Equal(t, config.DefaultSectors(config.DefaultSchedule()), tr.Sectors())
	assert.Len(t, tr.History(), 1)
	assert.Equal(t, domain.ThemeLight, tr.Theme())
	assert.Empty(t, tr.LastResetDate())
}

func TestNew_MalformedHistoryRecordsDropped(t *testing.T) {
	history := []domain.DailyStats{
		{ID: "old", Date: "2024-03-13", TotalTasks: 1, CompletedTasks: 0},
		{ID: "y", Date: "2024-03-14", TotalTasks: 2, CompletedTasks: 2, CompletionRate: 100},
		{ID: "bad", Date: "garbage"},
		{ID: "new", Date: "2024-03-13", TotalTasks: 1, CompletedTasks: 1, CompletionRate: 100},
	}
	raw, err := json.Marshal(history)
	require.NoError(t, err)
	kv := testutil.NewFailingKV()
	kv.Put(store.KeyDailyStats, string(raw))

	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()

	got := tr.History()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2024-03-13", "2024-03-14", "2024-03-15"},
		[]string{got[0].Date, got[1].Date, got[2].Date})
	assert.Equal(t, "new", got[0].ID, "the later duplicate wins")

	task := addTask(t, tr, "deep-work-1", "ship", domain.PriorityNormal)
	require.NoError(t, tr.UpdateTask(ctx, "deep-work-1", task.ID, domain.TaskPatch{Completed: testutil.Ptr(true)}))
	assert.Equal(t, 3, tr.Today().Streak)
	assert.Equal(t, 3, tr.Patterns().Days)

	stored, ok := kv.Value(store.KeyDailyStats)
	require.True(t, ok)
	assert.NotContains(t, stored, "garbage")
}

func TestNew_LoadFailure(t *testing.T) {
	kv := testutil.NewFailingKV()
	kv.FailLoads(true)

	_, err := New(context.Background(), kv, config.DefaultSchedule())
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrInjected)
}

func TestNew_ReconcilesStoredSectors(t *testing.T) {
	stored := []domain.FocusSector{
		{ID: "deep-work-1", Label: "Thesis", Description: "chapter 3", Icon: "old", Color: domain.ColorPink,
			Tasks: []domain.Task{{ID: "t1", Text: "outline", Priority: domain.PriorityUrgent}}},
		{ID: "retired-slot", Label: "Gone"},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	kv := testutil.NewFailingKV()
	kv.Put(store.KeySectors, string(raw))

	tr, _ := newTestTracker(t, kv)
	sectors := tr.Sectors()
	require.Len(t, sectors, len(config.DefaultSchedule()))

	_, ok := tr.Sector("retired-slot")
	assert.False(t, ok, "unknown stored sectors are dropped")

	deep, ok := tr.Sector("deep-work-1")
	require.True(t, ok)
	assert.Equal(t, "Thesis", deep.Label)
	assert.Equal(t, "chapter 3", deep.Description)
	assert.Equal(t, domain.ColorBlue, deep.Color, "colour comes from the schedule")
	require.Len(t, deep.Tasks, 1)
	assert.Equal(t, "outline", deep.Tasks[0].Text)

	night, ok := tr.Sector("night-routine")
	require.True(t, ok)
	assert.Empty(t, night.Tasks)

	assert.Equal(t, 1, tr.Today().TotalTasks)
}

func TestNew_RestoresPersistedState(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()

	task := addTask(t, tr, "morning-routine", "stretch", domain.PriorityImportant)
	require.NoError(t, tr.SaveDailyReview(ctx, "2024-03-15", 8, "good"))
	_, err := tr.ToggleTheme(ctx)
	require.NoError(t, err)

	reopened, _ := newTestTracker(t, kv)
	sector, ok := reopened.Sector("morning-routine")
	require.True(t, ok)
	require.Len(t, sector.Tasks, 1)
	assert.Equal(t, task.ID, sector.Tasks[0].ID)
	assert.Equal(t, domain.ThemeDark, reopened.Theme())

	today := reopened.Today()
	require.NotNil(t, today.DailyRating)
	assert.Equal(t, 8, *today.DailyRating)
	assert.Equal(t, tr.Today().ID, today.ID)
}

// ============ MUTATIONS ============

func TestAddTask_Defaults(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)

	task, err := tr.AddTask(context.Background(), "deep-work-1", domain.TaskDraft{Text: "write report", EstimatedTime: 45})
	require.NoError(t, err)
	require.NotNil(t, task)

	_, perr := uuid.Parse(task.ID)
	assert.NoError(t, perr)
	assert.Equal(t, "write report", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, domain.PriorityNormal, task.Priority)
	assert.Equal(t, 0, task.Progress)
	assert.Equal(t, 45, task.EstimatedTime)
	assert.True(t, task.CreatedAt.Equal(testNow))

	today := tr.Today()
	assert.Equal(t, 1, today.TotalTasks)
	assert.Equal(t, 1, today.PendingTasks)
	assert.Equal(t, 1, today.PriorityDistribution.Normal)

	raw, ok := kv.Value(store.KeySectors)
	require.True(t, ok)
	assert.Contains(t, raw, "write report")
	_, ok = kv.Value(store.KeyDailyStats)
	assert.True(t, ok)
	assert.False(t, tr.Dirty())
}

func TestAddTask_UsesIDGenerator(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	tr, _ := newTestTracker(t, testutil.NewFailingKV(), WithIDGenerator(gen))

	first := addTask(t, tr, "deep-work-1", "one", domain.PriorityUrgent)
	second := addTask(t, tr, "deep-work-1", "two", domain.PriorityNormal)
	// id-1 went to today's stats record at load.
	assert.Equal(t, "id-2", first.ID)
	assert.Equal(t, "id-3", second.ID)
	assert.Equal(t, "id-1", tr.Today().ID)
}

func TestAddTask_UnknownSectorIsNoop(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	before := tr.Sectors()

	task, err := tr.AddTask(context.Background(), "nope", domain.TaskDraft{Text: "x"})
	require.NoError(t, err)
	assert.Nil(t, task)
	assert.Equal(t, before, tr.Sectors())
	assert.Equal(t, 0, kv.Saves())
}

func TestUpdateTask(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	ctx := context.Background()
	task := addTask(t, tr, "creative-flow", "sketch", domain.PriorityUrgent)

	err := tr.UpdateTask(ctx, "creative-flow", task.ID, domain.TaskPatch{
		Completed: testutil.Ptr(true),
		TimeSpent: testutil.Ptr(30),
		Notes:     testutil.Ptr("done early"),
	})
	require.NoError(t, err)

	sector, _ := tr.Sector("creative-flow")
	got := sector.Tasks[0]
	assert.True(t, got.Completed)
	assert.Equal(t, 30, got.TimeSpent)
	assert.Equal(t, "done early", got.Notes)
	assert.Equal(t, "sketch", got.Text)

	today := tr.Today()
	assert.Equal(t, 100, today.CompletionRate)
	assert.Equal(t, 3, today.ProductivityScore)
	assert.Equal(t, 30, today.FocusTime["creative-flow"])
}

func TestUpdateTask_UnknownIDsAreNoops(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()
	addTask(t, tr, "creative-flow", "sketch", domain.PriorityNormal)
	saves := kv.Saves()
	before := tr.Sectors()

	require.NoError(t, tr.UpdateTask(ctx, "creative-flow", "missing", domain.TaskPatch{Completed: testutil.Ptr(true)}))
	require.NoError(t, tr.UpdateTask(ctx, "missing", "missing", domain.TaskPatch{Completed: testutil.Ptr(true)}))
	require.NoError(t, tr.DeleteTask(ctx, "creative-flow", "missing"))
	require.NoError(t, tr.UpdateSector(ctx, "missing", domain.SectorPatch{Label: testutil.Ptr("x")}))

	assert.Equal(t, before, tr.Sectors())
	assert.Equal(t, saves, kv.Saves())
}

func TestDeleteTask(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	a := addTask(t, tr, "lunch-break", "eat", domain.PriorityNormal)
	b := addTask(t, tr, "lunch-break", "walk", domain.PriorityNormal)

	require.NoError(t, tr.DeleteTask(context.Background(), "lunch-break", a.ID))

	sector, _ := tr.Sector("lunch-break")
	require.Len(t, sector.Tasks, 1)
	assert.Equal(t, b.ID, sector.Tasks[0].ID)
	assert.Equal(t, 1, tr.Today().TotalTasks)
}

func TestAddThenDelete_RestoresSectors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	ctx := context.Background()
	sectors := tr.Sectors()

	for trial := 0; trial < 50; trial++ {
		// Seed some unrelated tasks first so deletion has neighbours.
		sector := sectors[rng.Intn(len(sectors))].ID
		if rng.Intn(2) == 0 {
			addTask(t, tr, sector, fmt.Sprintf("keep-%d", trial), domain.Priorities[rng.Intn(3)])
		}
		before := tr.Sectors()

		task := addTask(t, tr, sector, fmt.Sprintf("tmp-%d", trial), domain.Priorities[rng.Intn(3)])
		require.NoError(t, tr.DeleteTask(ctx, sector, task.ID))

		after := tr.Sectors()
		require.Len(t, after, len(before))
		for i := range before {
			assert.Equal(t, before[i].ID, after[i].ID, "trial %d", trial)
			assert.Equal(t, taskIDs(before[i].Tasks), taskIDs(after[i].Tasks), "trial %d sector %s", trial, before[i].ID)
		}
	}
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestUpdateSector(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	addTask(t, tr, "deep-work-2", "review PRs", domain.PriorityNormal)

	err := tr.UpdateSector(context.Background(), "deep-work-2", domain.SectorPatch{
		Label:       testutil.Ptr("Afternoon"),
		Description: testutil.Ptr("code review"),
	})
	require.NoError(t, err)

	sector, _ := tr.Sector("deep-work-2")
	assert.Equal(t, "Afternoon", sector.Label)
	assert.Equal(t, "code review", sector.Description)
	assert.Len(t, sector.Tasks, 1)
	assert.Equal(t, "3PM - 6PM", sector.IdealTime)
}

// ============ REVIEW ============

func TestSaveDailyReview_ClampsRating(t *testing.T) {
	tests := []struct {
		rating int
		want   int
	}{
		{rating: 15, want: 10},
		{rating: 10, want: 10},
		{rating: 7, want: 7},
		{rating: 0, want: 1},
		{rating: -3, want: 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rating), func(t *testing.T) {
			tr, _ := newTestTracker(t, testutil.NewFailingKV())
			require.NoError(t, tr.SaveDailyReview(context.Background(), "2024-03-15", tc.rating, ""))
			today := tr.Today()
			require.NotNil(t, today.DailyRating)
			assert.Equal(t, tc.want, *today.DailyRating)
		})
	}
}

func TestSaveDailyReview_SurvivesRecompute(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	ctx := context.Background()
	id := tr.Today().ID

	require.NoError(t, tr.SaveDailyReview(ctx, "2024-03-15", 6, "slow start"))
	addTask(t, tr, "deep-work-1", "focus", domain.PriorityUrgent)

	today := tr.Today()
	require.NotNil(t, today.DailyRating)
	assert.Equal(t, 6, *today.DailyRating)
	assert.Equal(t, "slow start", today.Notes)
	assert.Equal(t, id, today.ID)
	assert.Equal(t, 1, today.TotalTasks)
	assert.Len(t, tr.History(), 1)
}

func TestSaveDailyReview_PastDateCreatesRecord(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())

	require.NoError(t, tr.SaveDailyReview(context.Background(), "2024-03-10", 4, "missed"))

	history := tr.History()
	require.Len(t, history, 2)
	assert.Equal(t, "2024-03-10", history[0].Date)
	require.NotNil(t, history[0].DailyRating)
	assert.Equal(t, 4, *history[0].DailyRating)
	assert.NotEmpty(t, history[0].ID)
}

func TestSaveDailyReview_InvalidDateIsNoop(t *testing.T) {
	tr, _ := newTestTracker(t, testutil.NewFailingKV())
	require.NoError(t, tr.SaveDailyReview(context.Background(), "15/03/2024", 5, ""))
	assert.Len(t, tr.History(), 1)
	assert.False(t, tr.Today().Rated())
}

// ============ STREAK ============

func TestCommit_FillsStreak(t *testing.T) {
	yesterday := []domain.DailyStats{
		{ID: "y", Date: "2024-03-14", TotalTasks: 2, CompletedTasks: 1},
		{ID: "yy", Date: "2024-03-13", TotalTasks: 1, CompletedTasks: 1},
	}
	raw, err := json.Marshal(yesterday)
	require.NoError(t, err)
	kv := testutil.NewFailingKV()
	kv.Put(store.KeyDailyStats, string(raw))

	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()
	assert.Equal(t, 0, tr.Today().Streak, "today has nothing completed yet")

	task := addTask(t, tr, "deep-work-1", "ship", domain.PriorityNormal)
	require.NoError(t, tr.UpdateTask(ctx, "deep-work-1", task.ID, domain.TaskPatch{Completed: testutil.Ptr(true)}))
	assert.Equal(t, 3, tr.Today().Streak)
}

// ============ PERSISTENCE FAILURES ============

func TestSaveFailure_KeepsStateAndFlushRetries(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	kv.FailSaves(true)

	task, err := tr.AddTask(context.Background(), "deep-work-1", domain.TaskDraft{Text: "offline"})
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrInjected)
	assert.Contains(t, err.Error(), "save sectors")
	require.NotNil(t, task)

	sector, _ := tr.Sector("deep-work-1")
	require.Len(t, sector.Tasks, 1, "in-memory state stays authoritative")
	assert.True(t, tr.Dirty())
	_, ok := kv.Value(store.KeySectors)
	assert.False(t, ok)

	kv.FailSaves(false)
	require.NoError(t, tr.Flush(context.Background()))
	assert.False(t, tr.Dirty())

	raw, ok := kv.Value(store.KeySectors)
	require.True(t, ok)
	assert.Contains(t, raw, "offline")
}

// ============ THEME ============

func TestToggleTheme(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()

	theme, err := tr.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
	raw, _ := kv.Value(store.KeyTheme)
	assert.Equal(t, `"dark"`, raw)

	theme, err = tr.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestSetTheme_InvalidIsNoop(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)

	require.NoError(t, tr.SetTheme(context.Background(), domain.Theme("neon")))
	assert.Equal(t, domain.ThemeLight, tr.Theme())
	_, ok := kv.Value(store.KeyTheme)
	assert.False(t, ok)

	require.NoError(t, tr.SetTheme(context.Background(), domain.ThemeDark))
	assert.Equal(t, domain.ThemeDark, tr.Theme())
}

// ============ RESET ============

func TestResetDay(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, clock := newTestTracker(t, kv)
	ctx := context.Background()

	require.NoError(t, tr.UpdateSector(ctx, "morning-routine", domain.SectorPatch{Label: testutil.Ptr("Wake up")}))
	addTask(t, tr, "morning-routine", "coffee", domain.PriorityNormal)
	addTask(t, tr, "deep-work-1", "code", domain.PriorityUrgent)

	clock.Set(testutil.At(2024, time.March, 16, 0, 2))
	reset, err := tr.ResetDay(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.True(t, reset)

	for _, s := range tr.Sectors() {
		assert.Empty(t, s.Tasks, s.ID)
	}
	morning, _ := tr.Sector("morning-routine")
	assert.Equal(t, "Wake up", morning.Label)
	assert.Equal(t, domain.ColorAmber, morning.Color)
	assert.Equal(t, "2024-03-16", tr.LastResetDate())

	today := tr.Today()
	assert.Equal(t, "2024-03-16", today.Date)
	assert.Equal(t, 0, today.TotalTasks)
	assert.Len(t, tr.History(), 2, "yesterday's record is kept")

	raw, _ := kv.Value(store.KeyLastResetDate)
	assert.Equal(t, `"2024-03-16"`, raw)

	addTask(t, tr, "deep-work-1", "after reset", domain.PriorityNormal)
	reset, err = tr.ResetDay(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.False(t, reset)
	sector, _ := tr.Sector("deep-work-1")
	assert.Len(t, sector.Tasks, 1)
}

func TestClearAll(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, clock := newTestTracker(t, kv)
	ctx := context.Background()

	addTask(t, tr, "deep-work-1", "code", domain.PriorityUrgent)
	require.NoError(t, tr.SetTheme(ctx, domain.ThemeDark))
	clock.Set(testutil.At(2024, time.March, 16, 0, 1))
	_, err := tr.ResetDay(ctx, "2024-03-16")
	require.NoError(t, err)

	require.NoError(t, tr.ClearAll(ctx))

	assert.Equal(t, config.DefaultSectors(config.DefaultSchedule()), tr.Sectors())
	assert.Equal(t, domain.ThemeLight, tr.Theme())
	assert.Empty(t, tr.LastResetDate())
	assert.Len(t, tr.History(), 1)

	_, ok := kv.Value(store.KeyTheme)
	assert.False(t, ok)
	_, ok = kv.Value(store.KeyLastResetDate)
	assert.False(t, ok)
}

func TestClearAll_FailureLeavesStateRecoverable(t *testing.T) {
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv)
	ctx := context.Background()

	addTask(t, tr, "deep-work-1", "keep me", domain.PriorityUrgent)
	require.NoError(t, tr.SetTheme(ctx, domain.ThemeDark))

	// The sectors key is already gone when the remaining clears fail.
	require.NoError(t, kv.Clear(ctx, store.KeySectors))
	kv.FailSaves(true)
	err := tr.ClearAll(ctx)
	require.ErrorIs(t, err, testutil.ErrInjected)

	assert.Equal(t, domain.ThemeDark, tr.Theme())
	s, _ := tr.Sector("deep-work-1")
	assert.Len(t, s.Tasks, 1)
	assert.True(t, tr.Dirty())

	kv.FailSaves(false)
	require.NoError(t, tr.Flush(ctx))
	raw, ok := kv.Value(store.KeySectors)
	require.True(t, ok)
	assert.Contains(t, raw, "keep me")
	_, ok = kv.Value(store.KeyDailyStats)
	assert.True(t, ok)
	assert.False(t, tr.Dirty())
}

// ============ OBSERVABILITY & CONCURRENCY ============

func TestObserverReceivesEvents(t *testing.T) {
	obs := &recordingObserver{}
	kv := testutil.NewFailingKV()
	tr, _ := newTestTracker(t, kv, WithObserver(obs))

	addTask(t, tr, "deep-work-1", "a", domain.PriorityNormal)
	kv.FailSaves(true)
	_, err := tr.ToggleTheme(context.Background())
	require.Error(t, err)

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Len(t, obs.events, 2)
	assert.Equal(t, "add_task", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "deep-work-1", obs.events[0].Fields["sector"])
	assert.Equal(t, "toggle_theme", obs.events[1].Name)
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, testutil.ErrInjected)
}

func TestConcurrentMutations(t *testing.T) {
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	tr, _ := newTestTracker(t, s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := tr.AddTask(context.Background(), "deep-work-1", domain.TaskDraft{Text: fmt.Sprint(i)})
			assert.NoError(t, err)
			_ = tr.Today()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, tr.Today().TotalTasks)

	reopened, _ := newTestTracker(t, s)
	sector, _ := reopened.Sector("deep-work-1")
	assert.Len(t, sector.Tasks, 20)
}
