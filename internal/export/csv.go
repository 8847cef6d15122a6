package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sadopc/focusday/internal/domain"
)

var csvHeader = []string{
	"Date", "Total", "Completed", "Pending", "Completion %", "Productivity",
	"Points", "Vibe", "Efficiency %", "Time Spent", "Streak", "Rating", "Notes",
}

func ToCSV(history []domain.DailyStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records(history) {
		rating := ""
		if r.Rating != nil {
			rating = strconv.Itoa(*r.Rating)
		}
		row := []string{
			r.Date,
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Completed),
			strconv.Itoa(r.Pending),
			strconv.Itoa(r.Completion),
			strconv.Itoa(r.Productivity),
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Vibe),
			strconv.Itoa(r.Efficiency),
			formatMinutes(r.SpentMin),
			strconv.Itoa(r.Streak),
			rating,
			r.Notes,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
