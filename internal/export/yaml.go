package export

import (
	"fmt"
	"os"

	"github.com/sadopc/focusday/internal/domain"
	"gopkg.in/yaml.v3"
)

func ToYAML(history []domain.DailyStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create yaml file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(history)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
