package stats

import (
	"math"
	"sort"

	"github.com/sadopc/focusday/internal/domain"
)

// PatternWindow is how many of the most recent records pattern analysis reads.
const PatternWindow = 7

// trendThreshold is the vibe-score change that counts as a trend.
const trendThreshold = 5.0

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Patterns summarises the trailing window of daily records.
type Patterns struct {
	Days              int
	AverageCompletion float64
	ConsistencyScore  int
	VibeTrend         Trend
	BestSector        string
}

// AnalyzePatterns reads up to PatternWindow of the latest records by date.
// sectorIDs fixes the tie-break order for BestSector.
func AnalyzePatterns(history []domain.DailyStats, sectorIDs []string) Patterns {
	window := recent(history, PatternWindow)
	if len(window) == 0 {
		return Patterns{VibeTrend: TrendStable}
	}

	rates := make([]float64, len(window))
	for i, st := range window {
		rates[i] = float64(st.CompletionRate)
	}
	mean := average(rates)

	return Patterns{
		Days:              len(window),
		AverageCompletion: mean,
		ConsistencyScore:  consistency(rates, mean),
		VibeTrend:         vibeTrend(window),
		BestSector:        bestSector(window, sectorIDs),
	}
}

// recent returns the last n records in ascending date order.
func recent(history []domain.DailyStats, n int) []domain.DailyStats {
	sorted := make([]domain.DailyStats, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}
	return sorted
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// consistency is 100 minus the population standard deviation of the
// completion rates, clamped to [0, 100].
func consistency(rates []float64, mean float64) int {
	variance := 0.0
	for _, r := range rates {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(rates))
	score := math.Round(100 - math.Sqrt(variance))
	return int(math.Max(0, math.Min(100, score)))
}

// vibeTrend compares the mean vibe of the newer half against the older half.
func vibeTrend(window []domain.DailyStats) Trend {
	if len(window) < 2 {
		return TrendStable
	}
	half := len(window) / 2
	older := make([]float64, 0, half)
	newer := make([]float64, 0, len(window)-half)
	for i, st := range window {
		if i < half {
			older = append(older, float64(st.VibeScore))
		} else {
			newer = append(newer, float64(st.VibeScore))
		}
	}
	delta := average(newer) - average(older)
	switch {
	case delta >= trendThreshold:
		return TrendImproving
	case delta <= -trendThreshold:
		return TrendDeclining
	}
	return TrendStable
}

// bestSector picks the sector with the highest mean energy flow. Earlier
// sectors win ties; no sector wins when every mean is zero.
func bestSector(window []domain.DailyStats, sectorIDs []string) string {
	best := ""
	bestMean := 0.0
	for _, id := range sectorIDs {
		sum := 0
		for _, st := range window {
			sum += st.EnergyFlow[id]
		}
		mean := float64(sum) / float64(len(window))
		if mean > bestMean {
			best, bestMean = id, mean
		}
	}
	return best
}
