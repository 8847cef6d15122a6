package stats

import "github.com/sadopc/focusday/internal/domain"

// MaxProductivityScore caps the weighted point total.
const MaxProductivityScore = 100

// ProductivityPoints sums the priority weights of completed tasks:
// urgent 3, important 2, normal 1.
func ProductivityPoints(sectors []domain.FocusSector) int {
	points := 0
	for _, s := range sectors {
		for _, t := range s.Tasks {
			if t.Completed {
				points += t.Points()
			}
		}
	}
	return points
}

// ProductivityScore is the point total capped at MaxProductivityScore.
func ProductivityScore(sectors []domain.FocusSector) int {
	return min(MaxProductivityScore, ProductivityPoints(sectors))
}
