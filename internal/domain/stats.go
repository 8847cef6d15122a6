package domain

import "time"

// DateLayout is the calendar-date key format of DailyStats.
const DateLayout = "2006-01-02"

// PriorityDistribution counts tasks per priority.
type PriorityDistribution struct {
	Urgent    int `json:"urgent"`
	Important int `json:"important"`
	Normal    int `json:"normal"`
}

// DailyStats is the derived metrics snapshot for one calendar date.
type DailyStats struct {
	ID                   string               `json:"id"`
	Date                 string               `json:"date"`
	TotalTasks           int                  `json:"totalTasks"`
	CompletedTasks       int                  `json:"completedTasks"`
	PendingTasks         int                  `json:"pendingTasks"`
	TotalEstimatedTime   int                  `json:"totalEstimatedTime"`
	TotalTimeSpent       int                  `json:"totalTimeSpent"`
	EfficiencyRate       int                  `json:"efficiencyRate"`
	PriorityDistribution PriorityDistribution `json:"priorityDistribution"`
	FocusTime            map[string]int       `json:"focusTime"`
	ProductivityScore    int                  `json:"productivityScore"`
	ProductivityPoints   int                  `json:"productivityPoints"`
	CompletionRate       int                  `json:"completionRate"`
	VibeScore            int                  `json:"vibeScore"`
	EnergyFlow           map[string]int       `json:"energyFlow"`
	Streak               int                  `json:"streak"`
	DailyRating          *int                 `json:"dailyRating,omitempty"`
	Notes                string               `json:"notes,omitempty"`
}

// Rated reports whether the end-of-day review has been saved.
func (s DailyStats) Rated() bool {
	return s.DailyRating != nil
}

// Day parses the record's date in loc. Malformed dates yield ok=false.
func (s DailyStats) Day(loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(DateLayout, s.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateOf formats t as a DailyStats date key in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
