package stats

import "github.com/sadopc/focusday/internal/domain"

// Daily aggregates sectors into a DailyStats snapshot for date.
// ID, Streak and the review fields are left for the caller to merge.
func Daily(sectors []domain.FocusSector, date string) domain.DailyStats {
	ds := domain.DailyStats{
		Date:      date,
		FocusTime: make(map[string]int, len(sectors)),
	}

	for _, s := range sectors {
		spent := 0
		for _, t := range s.Tasks {
			ds.TotalTasks++
			if t.Completed {
				ds.CompletedTasks++
			} else {
				ds.PendingTasks++
			}
			switch t.Priority {
			case domain.PriorityUrgent:
				ds.PriorityDistribution.Urgent++
			case domain.PriorityImportant:
				ds.PriorityDistribution.Important++
			case domain.PriorityNormal:
				ds.PriorityDistribution.Normal++
			}
			ds.TotalEstimatedTime += t.EstimatedTime
			ds.TotalTimeSpent += t.TimeSpent
			spent += t.TimeSpent
		}
		ds.FocusTime[s.ID] = spent
	}

	ds.EfficiencyRate = percent(ds.TotalTimeSpent, ds.TotalEstimatedTime, 100)
	ds.CompletionRate = percent(ds.CompletedTasks, ds.TotalTasks, 0)
	ds.ProductivityPoints = ProductivityPoints(sectors)
	ds.ProductivityScore = min(MaxProductivityScore, ds.ProductivityPoints)
	ds.EnergyFlow = EnergyFlow(sectors)
	ds.VibeScore = VibeScore(ds.EnergyFlow)
	return ds
}
