package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/lifecycle"
	"github.com/sadopc/focusday/internal/tracker"
)

type dashboardModel struct {
	tracker    *tracker.Tracker
	controller *lifecycle.Controller
	width      int
	height     int

	now        time.Time
	current    domain.FocusSector
	hasCurrent bool
	sectors    []domain.FocusSector
	today      domain.DailyStats
	phase      lifecycle.Phase
}

func newDashboardModel(tr *tracker.Tracker, ctl *lifecycle.Controller) dashboardModel {
	return dashboardModel{
		tracker:    tr,
		controller: ctl,
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	now        time.Time
	current    domain.FocusSector
	hasCurrent bool
	sectors    []domain.FocusSector
	today      domain.DailyStats
	phase      lifecycle.Phase
}

func (d dashboardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		msg := dashboardDataMsg{
			now:     time.Now(),
			sectors: d.tracker.Sectors(),
			today:   d.tracker.Today(),
			phase:   lifecycle.PhaseActive,
		}
		if d.controller != nil {
			msg.current, msg.hasCurrent = d.controller.CurrentSector()
			msg.phase = d.controller.Phase()
		}
		return msg
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	if msg, ok := msg.(dashboardDataMsg); ok {
		d.now = msg.now
		d.current = msg.current
		d.hasCurrent = msg.hasCurrent
		d.sectors = msg.sectors
		d.today = msg.today
		d.phase = msg.phase
	}
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderFocusPanel(contentWidth),
		d.renderTodayPanel(contentWidth),
		d.renderSectorStrip(contentWidth),
	)
}

func (d dashboardModel) renderFocusPanel(w int) string {
	clock := ""
	if !d.now.IsZero() {
		clock = mutedStyle.Render(d.now.Format("Mon Jan 2  15:04"))
	}

	if !d.hasCurrent {
		content := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Focus now"),
			clock,
			mutedStyle.Render("No sectors configured"),
		)
		return panelStyle.Width(w).Render(content)
	}

	s := d.current
	name := sectorStyle(s.Color).Bold(true).Render(fmt.Sprintf("%s %s", s.Icon, s.Label))
	pending := len(s.Tasks) - s.Completed()
	taskLine := successStyle.Render("All clear in this sector")
	if pending > 0 {
		taskLine = highlightStyle.Render(fmt.Sprintf("%d task(s) waiting", pending))
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Focus now")+"  "+clock)
	rows = append(rows, "")
	rows = append(rows, name+"  "+mutedStyle.Render(s.IdealTime))
	if s.Description != "" {
		rows = append(rows, subtitleStyle.Render(s.Description))
	}
	rows = append(rows, taskLine)
	for _, t := range s.Tasks {
		if t.Completed {
			continue
		}
		rows = append(rows, "  "+priorityStyle(t.Priority).Render("●")+" "+t.Text)
	}
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderTodayPanel(w int) string {
	t := d.today
	header := titleStyle.Render("Today") + "  " + mutedStyle.Render(t.Date)

	phase := mutedStyle.Render("in progress")
	switch d.phase {
	case lifecycle.PhaseReviewEligible:
		phase = warningStyle.Render("review due, press 4")
	case lifecycle.PhaseReviewed:
		phase = successStyle.Render("reviewed")
	}

	stats := fmt.Sprintf("  %s done  %s pending  %s total",
		successStyle.Render(fmt.Sprint(t.CompletedTasks)),
		warningStyle.Render(fmt.Sprint(t.PendingTasks)),
		highlightStyle.Render(fmt.Sprint(t.TotalTasks)),
	)
	scores := fmt.Sprintf("  completion %3d%%  productivity %d  vibe %d  streak %s",
		t.CompletionRate, t.ProductivityScore, t.VibeScore,
		accentStyle.Render(fmt.Sprintf("%d day(s)", t.Streak)),
	)
	bar := "  " + successStyle.Render(progressBar(t.CompletionRate, min(40, max(10, w-10))))

	content := lipgloss.JoinVertical(lipgloss.Left, header+"  "+phase, "", stats, scores, bar)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderSectorStrip(w int) string {
	title := titleStyle.Render("Sectors")
	if len(d.sectors) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No sectors")))
	}

	var rows []string
	rows = append(rows, title)
	for _, s := range d.sectors {
		marker := "  "
		if d.hasCurrent && s.ID == d.current.ID {
			marker = "> "
		}
		dot := sectorStyle(s.Color).Render("●")
		pct := 0
		if len(s.Tasks) > 0 {
			pct = s.Completed() * 100 / len(s.Tasks)
		}
		rows = append(rows, fmt.Sprintf("%s%s %-20s %-14s %s %d/%d",
			marker, dot, s.Label, s.IdealTime, progressBar(pct, 10), s.Completed(), len(s.Tasks)))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
