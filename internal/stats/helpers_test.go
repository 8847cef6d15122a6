package stats

import (
	"fmt"
	"time"

	"github.com/sadopc/focusday/internal/domain"
)

func task(id string, p domain.Priority, done bool) domain.Task {
	return domain.Task{ID: id, Text: id, Priority: p, Completed: done}
}

func sector(id string, tasks ...domain.Task) domain.FocusSector {
	return domain.FocusSector{ID: id, Label: id, Tasks: tasks}
}

func day(today time.Time, back int, completed int) domain.DailyStats {
	return domain.DailyStats{
		Date:           domain.DateOf(today.AddDate(0, 0, -back)),
		CompletedTasks: completed,
		TotalTasks:     completed,
	}
}

func taskID(i int) string {
	return fmt.Sprintf("t-%d", i)
}
