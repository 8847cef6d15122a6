package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/focusday/internal/domain"
)

type document struct {
	ExportedAt string   `json:"exported_at" yaml:"exported_at"`
	Count      int      `json:"count" yaml:"count"`
	Days       []record `json:"days" yaml:"days"`
}

func newDocument(history []domain.DailyStats) document {
	days := records(history)
	return document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(days),
		Days:       days,
	}
}

func ToJSON(history []domain.DailyStats, path string) error {
	data, err := json.MarshalIndent(newDocument(history), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
