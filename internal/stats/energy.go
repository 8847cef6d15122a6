package stats

import (
	"math"

	"github.com/sadopc/focusday/internal/domain"
)

// EnergyFlow maps each sector id to its completion percentage.
// Sectors without tasks map to 0.
func EnergyFlow(sectors []domain.FocusSector) map[string]int {
	flow := make(map[string]int, len(sectors))
	for _, s := range sectors {
		flow[s.ID] = percent(s.Completed(), len(s.Tasks), 0)
	}
	return flow
}

// VibeScore is the rounded mean of the energy-flow values, 0 when empty.
func VibeScore(flow map[string]int) int {
	if len(flow) == 0 {
		return 0
	}
	total := 0
	for _, v := range flow {
		total += v
	}
	return int(math.Round(float64(total) / float64(len(flow))))
}

// percent returns round(100*part/whole), or fallback when whole is zero.
func percent(part, whole, fallback int) int {
	if whole <= 0 {
		return fallback
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
