package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/tracker"
)

// resolveSector accepts a sector id or its 1-based position.
func resolveSector(tr *tracker.Tracker, ref string) (domain.FocusSector, error) {
	if s, ok := tr.Sector(ref); ok {
		return s, nil
	}
	sectors := tr.Sectors()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(sectors) {
		return sectors[n-1], nil
	}
	return domain.FocusSector{}, fmt.Errorf("%w: %q", tracker.ErrUnknownSector, ref)
}

// maxPositionDigits bounds refs read as positions. Longer all-digit refs
// are matched as id prefixes only.
const maxPositionDigits = 3

// resolveTask accepts a task id, a unique id prefix, or a 1-based position
// within the sector. Refs of up to maxPositionDigits digits are positions
// when in range, ahead of any id prefix they also match.
func resolveTask(s domain.FocusSector, ref string) (domain.Task, error) {
	if i := s.TaskIndex(ref); i >= 0 {
		return s.Tasks[i], nil
	}
	if len(ref) <= maxPositionDigits {
		if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(s.Tasks) {
			return s.Tasks[n-1], nil
		}
	}

	var match *domain.Task
	for i := range s.Tasks {
		if !strings.HasPrefix(s.Tasks[i].ID, ref) {
			continue
		}
		if match != nil {
			return domain.Task{}, fmt.Errorf("task %q is ambiguous in %s", ref, s.ID)
		}
		match = &s.Tasks[i]
	}
	if match == nil {
		return domain.Task{}, fmt.Errorf("no task %q in %s", ref, s.ID)
	}
	return *match, nil
}

func parsePriority(s string) (domain.Priority, error) {
	p := domain.Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q (want urgent, important or normal)", s)
	}
	return p, nil
}

func truncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
