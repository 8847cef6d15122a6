package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/lifecycle"
	"github.com/sadopc/focusday/internal/tracker"
)

type reviewModel struct {
	tracker    *tracker.Tracker
	controller *lifecycle.Controller
	width      int
	height     int

	today domain.DailyStats
	phase lifecycle.Phase

	formActive bool
	form       *huh.Form
	rating     *int
	notes      *string
}

func newReviewModel(tr *tracker.Tracker, ctl *lifecycle.Controller) reviewModel {
	rating := 5
	notes := ""
	return reviewModel{
		tracker:    tr,
		controller: ctl,
		rating:     &rating,
		notes:      &notes,
	}
}

func (r *reviewModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reviewDataMsg struct {
	today domain.DailyStats
	phase lifecycle.Phase
}

func (r reviewModel) refresh() tea.Cmd {
	return func() tea.Msg {
		msg := reviewDataMsg{today: r.tracker.Today(), phase: lifecycle.PhaseActive}
		if r.controller != nil {
			msg.phase = r.controller.Phase()
		}
		return msg
	}
}

func (r reviewModel) update(msg tea.Msg) (reviewModel, tea.Cmd) {
	if r.formActive && r.form != nil {
		return r.updateForm(msg)
	}

	switch msg := msg.(type) {
	case reviewDataMsg:
		r.today = msg.today
		r.phase = msg.phase
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Review), key.Matches(msg, keys.Edit):
			return r.showForm()
		}
	}
	return r, nil
}

func ratingOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, tracker.MaxRating-tracker.MinRating+1)
	for i := tracker.MaxRating; i >= tracker.MinRating; i-- {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%2d  %s", i, strings.Repeat("★", i)), i))
	}
	return opts
}

func (r reviewModel) showForm() (reviewModel, tea.Cmd) {
	*r.rating = 5
	if r.today.DailyRating != nil {
		*r.rating = *r.today.DailyRating
	}
	*r.notes = r.today.Notes

	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("How did today go?").Options(ratingOptions()...).Value(r.rating),
			huh.NewText().Title("Notes").CharLimit(1000).Value(r.notes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	r.formActive = true
	return r, r.form.Init()
}

func (r reviewModel) updateForm(msg tea.Msg) (reviewModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			r.formActive = false
			r.form = nil
			return r, nil
		}
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		r.formActive = false
		return r, r.save()
	}

	return r, cmd
}

// save stores the form's rating and notes against the day on display.
func (r reviewModel) save() tea.Cmd {
	date := r.today.Date
	rating := *r.rating
	notes := strings.TrimSpace(*r.notes)
	return mutate("Review saved", func(ctx context.Context) error {
		return r.tracker.SaveDailyReview(ctx, date, rating, notes)
	})
}

func (r reviewModel) view() string {
	w := r.width - 4
	if r.formActive && r.form != nil {
		title := titleStyle.Render("Daily Review") + "  " + mutedStyle.Render(r.today.Date)
		return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", r.form.View()))
	}

	t := r.today
	var rows []string
	rows = append(rows, titleStyle.Render("Daily Review")+"  "+mutedStyle.Render(t.Date))
	rows = append(rows, "")
	rows = append(rows, fmt.Sprintf("  %d of %d task(s) done, %d%% completion, vibe %d",
		t.CompletedTasks, t.TotalTasks, t.CompletionRate, t.VibeScore))
	rows = append(rows, "")

	if t.DailyRating != nil {
		rows = append(rows, fmt.Sprintf("  Rating  %s %s",
			accentStyle.Render(fmt.Sprintf("%d/%d", *t.DailyRating, tracker.MaxRating)),
			warningStyle.Render(strings.Repeat("★", *t.DailyRating))))
		if t.Notes != "" {
			rows = append(rows, "  Notes   "+t.Notes)
		}
		rows = append(rows, "")
		rows = append(rows, mutedStyle.Render("  enter: edit review"))
	} else {
		switch r.phase {
		case lifecycle.PhaseReviewEligible:
			rows = append(rows, warningStyle.Render("  Your day is winding down. Rate it to close the loop."))
		default:
			rows = append(rows, mutedStyle.Render("  Not reviewed yet."))
		}
		rows = append(rows, "")
		rows = append(rows, mutedStyle.Render("  enter: rate today"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
