package domain

// SectorColor is the accent colour of a focus sector.
type SectorColor string

const (
	ColorAmber   SectorColor = "amber"
	ColorBlue    SectorColor = "blue"
	ColorEmerald SectorColor = "emerald"
	ColorCyan    SectorColor = "cyan"
	ColorViolet  SectorColor = "violet"
	ColorSlate   SectorColor = "slate"
	ColorIndigo  SectorColor = "indigo"
	ColorPurple  SectorColor = "purple"
	ColorPink    SectorColor = "pink"
	ColorGreen   SectorColor = "green"
)

// Palette holds the terminal colours for one sector colour.
type Palette struct {
	Accent string // bars, dots, borders
	Soft   string // panel backgrounds in the light theme
}

var palettes = map[SectorColor]Palette{
	ColorAmber:   {Accent: "#F59E0B", Soft: "#FEF3C7"},
	ColorBlue:    {Accent: "#3B82F6", Soft: "#DBEAFE"},
	ColorEmerald: {Accent: "#10B981", Soft: "#D1FAE5"},
	ColorCyan:    {Accent: "#06B6D4", Soft: "#CFFAFE"},
	ColorViolet:  {Accent: "#8B5CF6", Soft: "#EDE9FE"},
	ColorSlate:   {Accent: "#64748B", Soft: "#F1F5F9"},
	ColorIndigo:  {Accent: "#6366F1", Soft: "#E0E7FF"},
	ColorPurple:  {Accent: "#A855F7", Soft: "#F3E8FF"},
	ColorPink:    {Accent: "#EC4899", Soft: "#FCE7F3"},
	ColorGreen:   {Accent: "#22C55E", Soft: "#DCFCE7"},
}

// Palette returns the lookup-table entry for c. Unknown colours use slate.
func (c SectorColor) Palette() Palette {
	if p, ok := palettes[c]; ok {
		return p
	}
	return palettes[ColorSlate]
}

func (c SectorColor) Valid() bool {
	_, ok := palettes[c]
	return ok
}
