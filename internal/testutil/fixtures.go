package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/sadopc/focusday/internal/domain"
)

// TaskOption customises a fixture task.
type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithCompleted() TaskOption {
	return func(t *domain.Task) { t.Completed = true }
}

func WithTimes(estimated, spent int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedTime = estimated
		t.TimeSpent = spent
	}
}

func NewTestTask(text string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now(),
		Priority:  domain.PriorityNormal,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTestSector returns a sector with the given id and tasks.
func NewTestSector(id string, tasks ...domain.Task) domain.FocusSector {
	return domain.FocusSector{
		ID:    id,
		Label: id,
		Color: domain.ColorSlate,
		Tasks: tasks,
	}
}

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}
