package stats

import (
	"testing"
	"time"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/stretchr/testify/assert"
)

func record(date string, completion, vibe int, flow map[string]int) domain.DailyStats {
	return domain.DailyStats{Date: date, CompletionRate: completion, VibeScore: vibe, EnergyFlow: flow}
}

func TestAnalyzePatterns_Empty(t *testing.T) {
	p := AnalyzePatterns(nil, []string{"a"})

	assert.Equal(t, 0, p.Days)
	assert.Zero(t, p.AverageCompletion)
	assert.Zero(t, p.ConsistencyScore)
	assert.Equal(t, TrendStable, p.VibeTrend)
	assert.Empty(t, p.BestSector)
}

func TestAnalyzePatterns_UsesTrailingSevenByDate(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var history []domain.DailyStats
	// Ten days, stored newest first; the three oldest have 0% completion.
	for i := 9; i >= 0; i-- {
		rate := 80
		if i < 3 {
			rate = 0
		}
		history = append(history, record(domain.DateOf(base.AddDate(0, 0, i)), rate, 50, nil))
	}

	p := AnalyzePatterns(history, nil)

	assert.Equal(t, 7, p.Days)
	assert.InDelta(t, 80.0, p.AverageCompletion, 0.001)
	assert.Equal(t, 100, p.ConsistencyScore)
}

func TestAnalyzePatterns_AverageOfShortHistory(t *testing.T) {
	history := []domain.DailyStats{
		record("2025-03-01", 50, 0, nil),
		record("2025-03-02", 75, 0, nil),
	}
	p := AnalyzePatterns(history, nil)

	assert.Equal(t, 2, p.Days)
	assert.InDelta(t, 62.5, p.AverageCompletion, 0.001)
}

func TestAnalyzePatterns_ConsistencyDropsWithSpread(t *testing.T) {
	steady := []domain.DailyStats{
		record("2025-03-01", 60, 0, nil),
		record("2025-03-02", 60, 0, nil),
	}
	erratic := []domain.DailyStats{
		record("2025-03-01", 0, 0, nil),
		record("2025-03-02", 100, 0, nil),
	}

	assert.Equal(t, 100, AnalyzePatterns(steady, nil).ConsistencyScore)
	assert.Equal(t, 50, AnalyzePatterns(erratic, nil).ConsistencyScore)
}

func TestAnalyzePatterns_VibeTrend(t *testing.T) {
	rising := []domain.DailyStats{
		record("2025-03-01", 0, 20, nil),
		record("2025-03-02", 0, 30, nil),
		record("2025-03-03", 0, 60, nil),
		record("2025-03-04", 0, 70, nil),
	}
	falling := []domain.DailyStats{
		record("2025-03-01", 0, 70, nil),
		record("2025-03-02", 0, 20, nil),
	}
	flat := []domain.DailyStats{
		record("2025-03-01", 0, 50, nil),
		record("2025-03-02", 0, 53, nil),
	}

	assert.Equal(t, TrendImproving, AnalyzePatterns(rising, nil).VibeTrend)
	assert.Equal(t, TrendDeclining, AnalyzePatterns(falling, nil).VibeTrend)
	assert.Equal(t, TrendStable, AnalyzePatterns(flat, nil).VibeTrend)
	assert.Equal(t, TrendStable, AnalyzePatterns(rising[:1], nil).VibeTrend)
}

func TestAnalyzePatterns_BestSector(t *testing.T) {
	history := []domain.DailyStats{
		record("2025-03-01", 0, 0, map[string]int{"morning": 50, "focus": 100}),
		record("2025-03-02", 0, 0, map[string]int{"morning": 100, "focus": 50}),
		record("2025-03-03", 0, 0, map[string]int{"morning": 0, "focus": 0, "night": 10}),
	}

	p := AnalyzePatterns(history, []string{"night", "morning", "focus"})

	// morning and focus tie; morning is listed first.
	assert.Equal(t, "morning", p.BestSector)
}

func TestAnalyzePatterns_NoBestSectorWhenIdle(t *testing.T) {
	history := []domain.DailyStats{record("2025-03-01", 0, 0, map[string]int{"a": 0})}
	assert.Empty(t, AnalyzePatterns(history, []string{"a"}).BestSector)
}
