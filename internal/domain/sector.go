package domain

// FocusSector is a time-of-day bucket of tasks. ID and IdealTime are fixed by
// configuration; Label and Description are user-editable.
type FocusSector struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	Color       SectorColor `json:"color"`
	IdealTime   string      `json:"idealTime"`
	Tasks       []Task      `json:"tasks"`
}

// SectorPatch is a partial update of the editable sector fields.
type SectorPatch struct {
	Label       *string
	Description *string
}

func (p SectorPatch) Apply(s *FocusSector) {
	if p.Label != nil {
		s.Label = *p.Label
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
}

// Completed counts the finished tasks in the sector.
func (s FocusSector) Completed() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// TaskIndex returns the position of the task with id, or -1.
func (s FocusSector) TaskIndex(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CloneSectors deep-copies sectors so callers cannot alias task slices.
func CloneSectors(sectors []FocusSector) []FocusSector {
	out := make([]FocusSector, len(sectors))
	for i, s := range sectors {
		out[i] = s
		if s.Tasks != nil {
			out[i].Tasks = append(make([]Task, 0, len(s.Tasks)), s.Tasks...)
		}
	}
	return out
}
