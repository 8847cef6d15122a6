package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/stats"
	"github.com/sadopc/focusday/internal/tracker"
)

type chartMode int

const (
	chartEnergy chartMode = iota
	chartWeek
)

// weekDays is how many days the completion chart covers.
const weekDays = 7

type statsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	mode     chartMode
	sectors  []domain.FocusSector
	today    domain.DailyStats
	history  []domain.DailyStats
	patterns stats.Patterns
	now      time.Time

	chart barchart.Model
}

func newStatsModel(tr *tracker.Tracker) statsModel {
	return statsModel{
		tracker: tr,
		chart:   barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statsDataMsg struct {
	sectors  []domain.FocusSector
	today    domain.DailyStats
	history  []domain.DailyStats
	patterns stats.Patterns
	now      time.Time
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return statsDataMsg{
			sectors:  s.tracker.Sectors(),
			today:    s.tracker.Today(),
			history:  s.tracker.History(),
			patterns: s.tracker.Patterns(),
			now:      time.Now(),
		}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.sectors = msg.sectors
		s.today = msg.today
		s.history = msg.history
		s.patterns = msg.patterns
		s.now = msg.now
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			if s.mode == chartEnergy {
				s.mode = chartWeek
			} else {
				s.mode = chartEnergy
			}
			s.buildChart()
			return s, nil
		}
	}
	return s, nil
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if s.height > 30 {
		chartHeight = 14
	}

	s.chart = barchart.New(chartWidth, chartHeight)
	if s.mode == chartWeek {
		s.chart.PushAll(s.weekBars())
	} else {
		s.chart.PushAll(s.energyBars())
	}
	s.chart.Draw()
}

// energyBars has one bar per sector: its share of completed tasks today.
func (s statsModel) energyBars() []barchart.BarData {
	bars := make([]barchart.BarData, 0, len(s.sectors))
	for _, sec := range s.sectors {
		bars = append(bars, barchart.BarData{
			Label: sec.Icon,
			Values: []barchart.BarValue{{
				Name:  sec.Label,
				Value: float64(s.today.EnergyFlow[sec.ID]),
				Style: sectorStyle(sec.Color),
			}},
		})
	}
	return bars
}

// weekBars shows the completion rate of the last weekDays calendar days.
// Days without a record draw an empty bar.
func (s statsModel) weekBars() []barchart.BarData {
	byDate := make(map[string]domain.DailyStats, len(s.history))
	for _, h := range s.history {
		byDate[h.Date] = h
	}
	now := s.now
	if now.IsZero() {
		now = time.Now()
	}

	bars := make([]barchart.BarData, 0, weekDays)
	for i := weekDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		rec, ok := byDate[domain.DateOf(d)]
		style := successStyle
		if !ok {
			style = mutedStyle
		}
		bars = append(bars, barchart.BarData{
			Label: d.Format("Mon"),
			Values: []barchart.BarValue{{
				Name:  domain.DateOf(d),
				Value: float64(rec.CompletionRate),
				Style: style,
			}},
		})
	}
	return bars
}

func (s statsModel) view() string {
	w := s.width - 4

	energyTab := inactiveTabStyle.Render("Energy flow")
	weekTab := inactiveTabStyle.Render("Last 7 days")
	if s.mode == chartEnergy {
		energyTab = activeTabStyle.Render("Energy flow")
	} else {
		weekTab = activeTabStyle.Render("Last 7 days")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ", energyTab, weekTab, "  ", mutedStyle.Render(s.today.Date),
	)

	chartView := s.chart.View()
	legend := s.renderLegend()
	metrics := s.renderMetrics()
	patterns := s.renderPatterns()

	nav := mutedStyle.Render("  enter: switch chart")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", legend, "", metrics, "", patterns, "", nav,
		),
	)
}

func (s statsModel) renderMetrics() string {
	t := s.today
	var rows []string
	rows = append(rows, subtitleStyle.Render("  Today"))
	rows = append(rows, fmt.Sprintf("  %-14s %s", "Vibe", accentStyle.Render(fmt.Sprintf("%d", t.VibeScore))))
	rows = append(rows, fmt.Sprintf("  %-14s %d (%d pts)", "Productivity", t.ProductivityScore, t.ProductivityPoints))
	rows = append(rows, fmt.Sprintf("  %-14s %d%%  %s", "Completion", t.CompletionRate, progressBar(t.CompletionRate, 20)))
	rows = append(rows, fmt.Sprintf("  %-14s %d%%  (%s spent of %s)", "Efficiency",
		t.EfficiencyRate, formatMinutes(t.TotalTimeSpent), formatMinutes(t.TotalEstimatedTime)))
	rows = append(rows, fmt.Sprintf("  %-14s %d day(s)", "Streak", t.Streak))
	rows = append(rows, fmt.Sprintf("  %-14s %s %d  %s %d  %s %d", "Priorities",
		priorityStyle(domain.PriorityUrgent).Render("urgent"), t.PriorityDistribution.Urgent,
		priorityStyle(domain.PriorityImportant).Render("important"), t.PriorityDistribution.Important,
		priorityStyle(domain.PriorityNormal).Render("normal"), t.PriorityDistribution.Normal,
	))
	return strings.Join(rows, "\n")
}

func (s statsModel) renderPatterns() string {
	p := s.patterns
	if p.Days == 0 {
		return mutedStyle.Render("  No history yet")
	}

	trend := mutedStyle.Render(string(p.VibeTrend))
	switch p.VibeTrend {
	case stats.TrendImproving:
		trend = successStyle.Render(string(p.VibeTrend))
	case stats.TrendDeclining:
		trend = errorStyle.Render(string(p.VibeTrend))
	}

	best := "none"
	for _, sec := range s.sectors {
		if sec.ID == p.BestSector {
			best = sectorStyle(sec.Color).Render(sec.Label)
		}
	}

	var rows []string
	rows = append(rows, subtitleStyle.Render(fmt.Sprintf("  Patterns (last %d day(s))", p.Days)))
	rows = append(rows, fmt.Sprintf("  %-14s %.0f%%", "Avg completion", p.AverageCompletion))
	rows = append(rows, fmt.Sprintf("  %-14s %d", "Consistency", p.ConsistencyScore))
	rows = append(rows, fmt.Sprintf("  %-14s %s", "Vibe trend", trend))
	rows = append(rows, fmt.Sprintf("  %-14s %s", "Best sector", best))
	return strings.Join(rows, "\n")
}

func (s statsModel) renderLegend() string {
	if s.mode == chartWeek {
		return mutedStyle.Render("  completion rate per day")
	}
	var items []string
	for _, sec := range s.sectors {
		dot := sectorStyle(sec.Color).Render("●")
		items = append(items, fmt.Sprintf("%s %s %s %d%%", dot, sec.Icon, sec.Label, s.today.EnergyFlow[sec.ID]))
	}
	if len(items) == 0 {
		return ""
	}
	return "  " + strings.Join(items, "  ")
}
