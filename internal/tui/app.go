package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/export"
	"github.com/sadopc/focusday/internal/lifecycle"
	"github.com/sadopc/focusday/internal/tracker"
)

// refreshInterval paces the clock display and the review prompt check.
const refreshInterval = 30 * time.Second

// App is the root Bubble Tea model.
type App struct {
	tracker    *tracker.Tracker
	controller *lifecycle.Controller
	exportDir  string
	width      int
	height     int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	sectors   sectorsModel
	stats     statsModel
	review    reviewModel
	settings  settingsModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(tr *tracker.Tracker, ctl *lifecycle.Controller) App {
	applyTheme(tr.Theme())

	h := help.New()
	h.ShowAll = false

	exportDir, _ := os.UserHomeDir()

	return App{
		tracker:    tr,
		controller: ctl,
		exportDir:  exportDir,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(tr, ctl),
		sectors:    newSectorsModel(tr),
		stats:      newStatsModel(tr),
		review:     newReviewModel(tr, ctl),
		settings:   newSettingsModel(tr),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.refresh(),
		a.checkReview(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type reviewDueMsg struct{}

// checkReview opens the review view once per session when it becomes due.
func (a App) checkReview() tea.Cmd {
	return func() tea.Msg {
		if a.controller != nil && a.controller.ReviewDue() {
			return reviewDueMsg{}
		}
		return nil
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.sectors.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.review.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, a.refreshCurrentView()

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Theme):
			return a, a.toggleTheme()
		case key.Matches(msg, keys.Review) && a.activeView != viewReview:
			return a.switchTo(viewReview)
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewSectors)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewStats)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewReview)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}

	case tickMsg:
		return a, tea.Batch(tickCmd(), a.refreshCurrentView(), a.checkReview())

	case reviewDueMsg:
		if a.isFormActive() {
			return a, nil
		}
		a.controller.MarkReviewShown()
		a.activeView = viewReview
		a.status = "Time for your daily review"
		return a, a.review.refresh()

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, a.refreshCurrentView()

	case dataChangedMsg:
		if msg.status != "" {
			a.status = msg.status
			a.statusErr = false
		}
		return a, a.refreshCurrentView()

	case themeChangedMsg:
		applyTheme(a.tracker.Theme())
		return a, a.refreshCurrentView()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		theme, err := a.tracker.ToggleTheme(context.Background())
		if err != nil {
			return errStatus("Theme not saved", err)
		}
		applyTheme(theme)
		return themeChangedMsg{}
	}
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewSectors:
		a.sectors, cmd = a.sectors.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewReview:
		a.review, cmd = a.review.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewSectors:
		return a.sectors.formActive
	case viewReview:
		return a.review.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.refresh()
	case viewSectors:
		return a.sectors.refresh()
	case viewStats:
		return a.stats.refresh()
	case viewReview:
		return a.review.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewSectors:
		content = a.sectors.view()
	case viewStats:
		content = a.stats.view()
	case viewReview:
		content = a.review.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("focusday")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	// Unsaved-state indicator
	dirty := ""
	if a.tracker.Dirty() {
		dirty = warningStyle.Render(" ● unsaved")
	}

	left := footerStyle.Render(helpView)
	right := dirty + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range export.Formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+string(f)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(export.Formats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(export.Formats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format export.Format) tea.Cmd {
	return func() tea.Msg {
		dateStr := time.Now().Format("2006-01-02")
		path := filepath.Join(a.exportDir, fmt.Sprintf("focusday-export-%s.%s", dateStr, format))
		if err := export.Write(a.tracker.History(), format, path); err != nil {
			return errStatus("Export error", err)
		}
		return exportDoneMsg{path: path}
	}
}
