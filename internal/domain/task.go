package domain

import "time"

// Task is a single to-do item owned by one focus sector.
// EstimatedTime and TimeSpent are in minutes.
type Task struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`
	Priority      Priority  `json:"priority"`
	Progress      int       `json:"progress"`
	EstimatedTime int       `json:"estimatedTime"`
	TimeSpent     int       `json:"timeSpent"`
	Notes         string    `json:"notes,omitempty"`
}

// TaskDraft carries the caller-supplied fields of a new task.
type TaskDraft struct {
	Text          string
	Priority      Priority
	Notes         string
	EstimatedTime int
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Text          *string
	Priority      *Priority
	Completed     *bool
	Notes         *string
	Progress      *int
	EstimatedTime *int
	TimeSpent     *int
}

// Apply merges the non-nil fields of p into t.
func (p TaskPatch) Apply(t *Task) {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Priority != nil && p.Priority.Valid() {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.EstimatedTime != nil {
		t.EstimatedTime = *p.EstimatedTime
	}
	if p.TimeSpent != nil {
		t.TimeSpent = *p.TimeSpent
	}
}

// Points is the productivity weight of the task's priority.
func (t Task) Points() int {
	switch t.Priority {
	case PriorityUrgent:
		return 3
	case PriorityImportant:
		return 2
	case PriorityNormal:
		return 1
	}
	return 0
}
