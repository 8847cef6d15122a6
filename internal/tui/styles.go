package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/domain"
)

// palette is the set of colours one theme uses.
type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	errorC    lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#818CF8"),
		accent:    lipgloss.Color("#C084FC"),
		muted:     lipgloss.Color("#64748B"),
		success:   lipgloss.Color("#34D399"),
		warning:   lipgloss.Color("#FBBF24"),
		errorC:    lipgloss.Color("#F87171"),
		fg:        lipgloss.Color("#E2E8F0"),
		subtle:    lipgloss.Color("#334155"),
		highlight: lipgloss.Color("#7AA2F7"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#4F46E5"),
		accent:    lipgloss.Color("#9333EA"),
		muted:     lipgloss.Color("#64748B"),
		success:   lipgloss.Color("#059669"),
		warning:   lipgloss.Color("#D97706"),
		errorC:    lipgloss.Color("#DC2626"),
		fg:        lipgloss.Color("#0F172A"),
		subtle:    lipgloss.Color("#CBD5E1"),
		highlight: lipgloss.Color("#2563EB"),
	}
)

// Styles. applyTheme rebuilds them for the active palette.
var (
	colorPrimary lipgloss.Color
	colorSubtle  lipgloss.Color

	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
	doneItemStyle     lipgloss.Style
)

func init() {
	applyTheme(domain.ThemeLight)
}

func paletteFor(t domain.Theme) palette {
	if t == domain.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

func applyTheme(t domain.Theme) {
	p := paletteFor(t)
	colorPrimary = p.primary
	colorSubtle = p.subtle

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.primary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.subtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.primary).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.fg)
	subtitleStyle = lipgloss.NewStyle().Foreground(p.muted)
	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	warningStyle = lipgloss.NewStyle().Foreground(p.warning)
	errorStyle = lipgloss.NewStyle().Foreground(p.errorC)
	mutedStyle = lipgloss.NewStyle().Foreground(p.muted)
	highlightStyle = lipgloss.NewStyle().Foreground(p.highlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(p.primary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(p.fg)
	doneItemStyle = lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true)
}

// sectorStyle colours text with the sector's accent.
func sectorStyle(c domain.SectorColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Palette().Accent))
}

func priorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return errorStyle
	case domain.PriorityImportant:
		return warningStyle
	}
	return mutedStyle
}
