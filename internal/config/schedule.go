package config

import (
	"errors"
	"fmt"

	"github.com/sadopc/focusday/internal/domain"
)

// SectorSlot binds a focus sector to a range of hours. EndHour is exclusive;
// a slot whose StartHour is greater than its EndHour wraps past midnight.
type SectorSlot struct {
	ID          string             `mapstructure:"id"`
	Label       string             `mapstructure:"label"`
	Icon        string             `mapstructure:"icon"`
	Description string             `mapstructure:"description"`
	Color       domain.SectorColor `mapstructure:"color"`
	StartHour   int                `mapstructure:"start_hour"`
	EndHour     int                `mapstructure:"end_hour"`
	IdealTime   string             `mapstructure:"ideal_time"`
}

// Contains reports whether hour falls inside the slot.
func (s SectorSlot) Contains(hour int) bool {
	if s.StartHour < s.EndHour {
		return hour >= s.StartHour && hour < s.EndHour
	}
	return hour >= s.StartHour || hour < s.EndHour
}

// Sector builds the initial, task-less sector for the slot.
func (s SectorSlot) Sector() domain.FocusSector {
	ideal := s.IdealTime
	if ideal == "" {
		ideal = FormatHour(s.StartHour) + " - " + FormatHour(s.EndHour)
	}
	return domain.FocusSector{
		ID:          s.ID,
		Label:       s.Label,
		Icon:        s.Icon,
		Description: s.Description,
		Color:       s.Color,
		IdealTime:   ideal,
		Tasks:       []domain.Task{},
	}
}

// FormatHour renders an hour of the day as 12AM, 6AM, 3PM.
func FormatHour(hour int) string {
	hour %= 24
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d%s", h, suffix)
}

// DefaultSchedule partitions the day into eight contiguous slots.
func DefaultSchedule() []SectorSlot {
	return []SectorSlot{
		{ID: "sleep-early", Label: "Rest & Recharge", Icon: "🌙", Description: "Sleep and recovery", Color: domain.ColorSlate, StartHour: 0, EndHour: 6},
		{ID: "morning-routine", Label: "Morning Routine", Icon: "☀️", Description: "Wake up, move, plan the day", Color: domain.ColorAmber, StartHour: 6, EndHour: 8},
		{ID: "deep-work-1", Label: "Deep Work I", Icon: "🎯", Description: "Hardest problem first", Color: domain.ColorBlue, StartHour: 8, EndHour: 11},
		{ID: "creative-flow", Label: "Creative Flow", Icon: "🎨", Description: "Writing, design, exploration", Color: domain.ColorViolet, StartHour: 11, EndHour: 14},
		{ID: "lunch-break", Label: "Lunch & Reset", Icon: "🍽️", Description: "Eat, walk, step away", Color: domain.ColorEmerald, StartHour: 14, EndHour: 15},
		{ID: "deep-work-2", Label: "Deep Work II", Icon: "💻", Description: "Second focus block", Color: domain.ColorIndigo, StartHour: 15, EndHour: 18},
		{ID: "evening-winddown", Label: "Evening Wind-down", Icon: "🌅", Description: "Errands, people, light admin", Color: domain.ColorPurple, StartHour: 18, EndHour: 21},
		{ID: "night-routine", Label: "Night Routine", Icon: "📖", Description: "Review, read, prepare tomorrow", Color: domain.ColorCyan, StartHour: 21, EndHour: 24},
	}
}

// DefaultSectors builds the initial sector collection for slots.
func DefaultSectors(slots []SectorSlot) []domain.FocusSector {
	sectors := make([]domain.FocusSector, len(slots))
	for i, s := range slots {
		sectors[i] = s.Sector()
	}
	return sectors
}

var (
	ErrNoSlots       = errors.New("schedule has no sector slots")
	ErrSlotOverlap   = errors.New("sector slots overlap")
	ErrDuplicateSlot = errors.New("duplicate sector slot id")
	ErrInvalidSlot   = errors.New("invalid sector slot")
)

// ValidateSchedule rejects empty schedules, malformed slots and overlapping
// ranges. Uncovered hours are allowed; selection falls back to the first slot.
func ValidateSchedule(slots []SectorSlot) error {
	if len(slots) == 0 {
		return ErrNoSlots
	}
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if s.ID == "" {
			return fmt.Errorf("%w: empty id", ErrInvalidSlot)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlot, s.ID)
		}
		seen[s.ID] = true
		if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 1 || s.EndHour > 24 || s.StartHour == s.EndHour {
			return fmt.Errorf("%w: %q has hours %d-%d", ErrInvalidSlot, s.ID, s.StartHour, s.EndHour)
		}
	}
	for hour := 0; hour < 24; hour++ {
		owner := ""
		for _, s := range slots {
			if !s.Contains(hour) {
				continue
			}
			if owner != "" {
				return fmt.Errorf("%w: %q and %q both cover hour %d", ErrSlotOverlap, owner, s.ID, hour)
			}
			owner = s.ID
		}
	}
	return nil
}
