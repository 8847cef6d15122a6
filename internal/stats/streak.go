package stats

import (
	"sort"
	"time"

	"github.com/sadopc/focusday/internal/domain"
)

// Streak counts consecutive productive days ending on today's date. A day is
// productive when its record has at least one completed task; a missing date
// or an unproductive day ends the run.
func Streak(history []domain.DailyStats, today time.Time) int {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]domain.DailyStats, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	anchor := calendarDay(today)
	streak := 0
	for _, st := range sorted {
		day, ok := st.Day(time.UTC)
		if !ok {
			break
		}
		if daysBetween(anchor, day) != streak || st.CompletedTasks <= 0 {
			break
		}
		streak++
	}
	return streak
}

// calendarDay strips the clock and zone from t, keeping its local date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns whole days from day back to anchor. Both are UTC midnights.
func daysBetween(anchor, day time.Time) int {
	return int(anchor.Sub(day).Hours() / 24)
}
