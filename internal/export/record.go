package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sadopc/focusday/internal/domain"
)

// Format names an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatCSV, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want csv, json or yaml)", s)
}

// Write exports history to path in the given format.
func Write(history []domain.DailyStats, format Format, path string) error {
	switch format {
	case FormatCSV:
		return ToCSV(history, path)
	case FormatJSON:
		return ToJSON(history, path)
	case FormatYAML:
		return ToYAML(history, path)
	}
	return fmt.Errorf("unknown export format %q", format)
}

// record is one exported day, shared by the JSON and YAML writers.
type record struct {
	Date         string `json:"date" yaml:"date"`
	Total        int    `json:"total" yaml:"total"`
	Completed    int    `json:"completed" yaml:"completed"`
	Pending      int    `json:"pending" yaml:"pending"`
	Completion   int    `json:"completion" yaml:"completion"`
	Productivity int    `json:"productivity" yaml:"productivity"`
	Points       int    `json:"points" yaml:"points"`
	Vibe         int    `json:"vibe" yaml:"vibe"`
	Efficiency   int    `json:"efficiency" yaml:"efficiency"`
	SpentMin     int    `json:"spent_minutes" yaml:"spent_minutes"`
	Streak       int    `json:"streak" yaml:"streak"`
	Rating       *int   `json:"rating,omitempty" yaml:"rating,omitempty"`
	Notes        string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// records converts history into export rows ordered by date.
func records(history []domain.DailyStats) []record {
	if len(history) == 0 {
		return nil
	}
	sorted := append([]domain.DailyStats(nil), history...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	out := make([]record, 0, len(sorted))
	for _, ds := range sorted {
		out = append(out, record{
			Date:         ds.Date,
			Total:        ds.TotalTasks,
			Completed:    ds.CompletedTasks,
			Pending:      ds.PendingTasks,
			Completion:   ds.CompletionRate,
			Productivity: ds.ProductivityScore,
			Points:       ds.ProductivityPoints,
			Vibe:         ds.VibeScore,
			Efficiency:   ds.EfficiencyRate,
			SpentMin:     ds.TotalTimeSpent,
			Streak:       ds.Streak,
			Rating:       ds.DailyRating,
			Notes:        ds.Notes,
		})
	}
	return out
}

// formatMinutes renders minutes as HH:MM.
func formatMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
