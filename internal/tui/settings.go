package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/config"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/tracker"
)

type settingsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	theme     domain.Theme
	lastReset string
	days      int
	slots     []config.SectorSlot

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formTheme *domain.Theme
	confirm   *bool
	clearing  bool
}

func newSettingsModel(tr *tracker.Tracker) settingsModel {
	theme := domain.ThemeLight
	confirm := false
	return settingsModel{
		tracker:   tr,
		formTheme: &theme,
		confirm:   &confirm,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	theme     domain.Theme
	lastReset string
	days      int
	slots     []config.SectorSlot
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return settingsDataMsg{
			theme:     s.tracker.Theme(),
			lastReset: s.tracker.LastResetDate(),
			days:      len(s.tracker.History()),
			slots:     s.tracker.Slots(),
		}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.theme = msg.theme
		s.lastReset = msg.lastReset
		s.days = msg.days
		s.slots = msg.slots
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Edit):
			return s.showThemeForm()
		case key.Matches(msg, keys.Clear):
			return s.showClearForm()
		}
	}
	return s, nil
}

func (s settingsModel) showThemeForm() (settingsModel, tea.Cmd) {
	*s.formTheme = s.theme
	s.clearing = false

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Theme]().Title("Theme").
				Options(
					huh.NewOption("Light", domain.ThemeLight),
					huh.NewOption("Dark", domain.ThemeDark),
				).Value(s.formTheme),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) showClearForm() (settingsModel, tea.Cmd) {
	*s.confirm = false
	s.clearing = true

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all data?").
				Description("Tasks, history and the theme are removed. Sectors return to their defaults.").
				Affirmative("Clear").
				Negative("Keep").
				Value(s.confirm),
		),
	).WithShowHelp(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.submit()
	}

	return s, cmd
}

func (s settingsModel) submit() tea.Cmd {
	if s.clearing {
		if !*s.confirm {
			return nil
		}
		return func() tea.Msg {
			if err := s.tracker.ClearAll(context.Background()); err != nil {
				return errStatus("Clear failed", err)
			}
			return themeChangedMsg{}
		}
	}

	theme := *s.formTheme
	if theme == s.theme {
		return nil
	}
	return func() tea.Msg {
		if err := s.tracker.SetTheme(context.Background(), theme); err != nil {
			return errStatus("Theme not saved", err)
		}
		return themeChangedMsg{}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	lastReset := s.lastReset
	if lastReset == "" {
		lastReset = "never"
	}

	label := lipgloss.NewStyle().Width(18)
	var rows []string
	rows = append(rows, titleStyle.Render("Settings"))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Theme"), highlightStyle.Render(string(s.theme))))
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Last reset"), highlightStyle.Render(lastReset)))
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Days recorded"), highlightStyle.Render(fmt.Sprint(s.days))))
	rows = append(rows, "")
	rows = append(rows, subtitleStyle.Render("  Schedule"))
	for _, slot := range s.slots {
		dot := sectorStyle(slot.Color).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %02d:00-%02d:00  %s %s", dot, slot.StartHour, slot.EndHour, slot.Icon, slot.Label))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: change theme  X: clear all data"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
