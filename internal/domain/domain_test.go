package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPatch_AppliesOnlySetFields(t *testing.T) {
	task := Task{ID: "t-1", Text: "write", Priority: PriorityNormal, Notes: "keep"}
	text := "rewrite"
	done := true
	urgent := PriorityUrgent

	TaskPatch{Text: &text, Completed: &done, Priority: &urgent}.Apply(&task)

	assert.Equal(t, "rewrite", task.Text)
	assert.True(t, task.Completed)
	assert.Equal(t, PriorityUrgent, task.Priority)
	assert.Equal(t, "keep", task.Notes)
}

func TestTaskPatch_IgnoresInvalidPriority(t *testing.T) {
	task := Task{Priority: PriorityImportant}
	bogus := Priority("someday")

	TaskPatch{Priority: &bogus}.Apply(&task)

	assert.Equal(t, PriorityImportant, task.Priority)
}

func TestTask_Points(t *testing.T) {
	assert.Equal(t, 3, Task{Priority: PriorityUrgent}.Points())
	assert.Equal(t, 2, Task{Priority: PriorityImportant}.Points())
	assert.Equal(t, 1, Task{Priority: PriorityNormal}.Points())
	assert.Equal(t, 0, Task{Priority: "other"}.Points())
}

func TestParsePriority_DefaultsToNormal(t *testing.T) {
	assert.Equal(t, PriorityUrgent, ParsePriority("urgent"))
	assert.Equal(t, PriorityNormal, ParsePriority(""))
	assert.Equal(t, PriorityNormal, ParsePriority("URGENT"))
}

func TestSectorColor_PaletteFallsBackToSlate(t *testing.T) {
	assert.Equal(t, palettes[ColorSlate], SectorColor("magenta").Palette())
	assert.Equal(t, palettes[ColorAmber], ColorAmber.Palette())
	assert.False(t, SectorColor("magenta").Valid())
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestCloneSectors_DoesNotAliasTasks(t *testing.T) {
	orig := []FocusSector{{ID: "a", Tasks: []Task{{ID: "t"}}}}
	cp := CloneSectors(orig)
	cp[0].Tasks[0].Text = "changed"

	assert.Empty(t, orig[0].Tasks[0].Text)
}

func TestDailyStats_Day(t *testing.T) {
	d, ok := DailyStats{Date: "2025-03-15"}.Day(time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, ok = DailyStats{Date: "15/03/2025"}.Day(time.UTC)
	assert.False(t, ok)
}

func TestCloneSectors_KeepsEmptyTaskSlices(t *testing.T) {
	cp := CloneSectors([]FocusSector{{ID: "a", Tasks: []Task{}}, {ID: "b"}})
	assert.NotNil(t, cp[0].Tasks)
	assert.Nil(t, cp[1].Tasks)
}
