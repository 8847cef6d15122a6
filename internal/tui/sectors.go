package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/focusday/internal/domain"
	"github.com/sadopc/focusday/internal/tracker"
)

type sectorFormType string

const (
	formNewTask    sectorFormType = "task"
	formEditTask   sectorFormType = "edit_task"
	formEditSector sectorFormType = "edit_sector"
)

type sectorsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	sectors      []domain.FocusSector
	cursor       int
	taskCursor   int
	viewingTasks bool // true = viewing tasks of selected sector

	formActive bool
	form       *huh.Form
	formType   sectorFormType

	// Form field pointers (survive value copies)
	formText        *string
	formPriority    *domain.Priority
	formNotes       *string
	formEstimate    *string
	formSpent       *string
	formProgress    *string
	formLabel       *string
	formDescription *string

	editingTaskID string
}

func newSectorsModel(tr *tracker.Tracker) sectorsModel {
	text, notes, estimate, spent, progress, label, desc := "", "", "", "", "", "", ""
	priority := domain.PriorityNormal
	return sectorsModel{
		tracker:         tr,
		formText:        &text,
		formPriority:    &priority,
		formNotes:       &notes,
		formEstimate:    &estimate,
		formSpent:       &spent,
		formProgress:    &progress,
		formLabel:       &label,
		formDescription: &desc,
	}
}

func (p *sectorsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type sectorsDataMsg struct {
	sectors []domain.FocusSector
}

func (p sectorsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return sectorsDataMsg{sectors: p.tracker.Sectors()}
	}
}

func (p sectorsModel) selectedSector() (domain.FocusSector, bool) {
	if p.cursor < 0 || p.cursor >= len(p.sectors) {
		return domain.FocusSector{}, false
	}
	return p.sectors[p.cursor], true
}

func (p sectorsModel) selectedTask() (domain.Task, bool) {
	s, ok := p.selectedSector()
	if !ok || p.taskCursor < 0 || p.taskCursor >= len(s.Tasks) {
		return domain.Task{}, false
	}
	return s.Tasks[p.taskCursor], true
}

func (p sectorsModel) update(msg tea.Msg) (sectorsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case sectorsDataMsg:
		p.sectors = msg.sectors
		if p.cursor >= len(p.sectors) {
			p.cursor = max(0, len(p.sectors)-1)
		}
		if s, ok := p.selectedSector(); ok && p.taskCursor >= len(s.Tasks) {
			p.taskCursor = max(0, len(s.Tasks)-1)
		}
		return p, nil

	case tea.KeyMsg:
		if p.viewingTasks {
			return p.updateTaskView(msg)
		}
		return p.updateSectorList(msg)
	}
	return p, nil
}

func (p sectorsModel) updateSectorList(msg tea.KeyMsg) (sectorsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(p.sectors)-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(p.sectors) > 0 {
			p.viewingTasks = true
			p.taskCursor = 0
			return p, p.refresh()
		}
	case key.Matches(msg, keys.New):
		if len(p.sectors) > 0 {
			return p.showNewTaskForm()
		}
	case key.Matches(msg, keys.Edit):
		if len(p.sectors) > 0 {
			return p.showEditSectorForm()
		}
	}
	return p, nil
}

func (p sectorsModel) updateTaskView(msg tea.KeyMsg) (sectorsModel, tea.Cmd) {
	sector, _ := p.selectedSector()
	switch {
	case key.Matches(msg, keys.Back):
		p.viewingTasks = false
		return p, nil
	case key.Matches(msg, keys.Up):
		if p.taskCursor > 0 {
			p.taskCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.taskCursor < len(sector.Tasks)-1 {
			p.taskCursor++
		}
	case key.Matches(msg, keys.New):
		return p.showNewTaskForm()
	case key.Matches(msg, keys.Toggle):
		if task, ok := p.selectedTask(); ok {
			done := !task.Completed
			status := "Task done"
			if !done {
				status = "Task reopened"
			}
			return p, mutate(status, func(ctx context.Context) error {
				return p.tracker.UpdateTask(ctx, sector.ID, task.ID, domain.TaskPatch{Completed: &done})
			})
		}
	case key.Matches(msg, keys.Edit):
		if _, ok := p.selectedTask(); ok {
			return p.showEditTaskForm()
		}
	case key.Matches(msg, keys.Delete):
		if task, ok := p.selectedTask(); ok {
			return p, mutate("Task deleted", func(ctx context.Context) error {
				return p.tracker.DeleteTask(ctx, sector.ID, task.ID)
			})
		}
	}
	return p, nil
}

func priorityOptions() []huh.Option[domain.Priority] {
	opts := make([]huh.Option[domain.Priority], len(domain.Priorities))
	for i, pr := range domain.Priorities {
		opts[i] = huh.NewOption(pr.Label(), pr)
	}
	return opts
}

func (p sectorsModel) showNewTaskForm() (sectorsModel, tea.Cmd) {
	*p.formText = ""
	*p.formPriority = domain.PriorityNormal
	*p.formNotes = ""
	*p.formEstimate = ""
	p.formType = formNewTask

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(p.formText).Validate(validateRequired),
			huh.NewSelect[domain.Priority]().Title("Priority").Options(priorityOptions()...).Value(p.formPriority),
			huh.NewInput().Title("Estimate (min)").Value(p.formEstimate).Validate(validateMinutes),
			huh.NewInput().Title("Notes").Value(p.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p sectorsModel) showEditTaskForm() (sectorsModel, tea.Cmd) {
	task, _ := p.selectedTask()
	*p.formText = task.Text
	*p.formPriority = task.Priority
	*p.formNotes = task.Notes
	*p.formEstimate = strconv.Itoa(task.EstimatedTime)
	*p.formSpent = strconv.Itoa(task.TimeSpent)
	*p.formProgress = strconv.Itoa(task.Progress)
	p.formType = formEditTask
	p.editingTaskID = task.ID

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Value(p.formText).Validate(validateRequired),
			huh.NewSelect[domain.Priority]().Title("Priority").Options(priorityOptions()...).Value(p.formPriority),
			huh.NewInput().Title("Estimate (min)").Value(p.formEstimate).Validate(validateMinutes),
			huh.NewInput().Title("Time spent (min)").Value(p.formSpent).Validate(validateMinutes),
			huh.NewInput().Title("Progress (%)").Value(p.formProgress).Validate(validateMinutes),
			huh.NewInput().Title("Notes").Value(p.formNotes),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p sectorsModel) showEditSectorForm() (sectorsModel, tea.Cmd) {
	sector, _ := p.selectedSector()
	*p.formLabel = sector.Label
	*p.formDescription = sector.Description
	p.formType = formEditSector

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Label").Value(p.formLabel).Validate(validateRequired),
			huh.NewInput().Title("Description").Value(p.formDescription),
		),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p sectorsModel) updateForm(msg tea.Msg) (sectorsModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		return p, p.submitForm()
	}

	return p, cmd
}

// submitForm turns the completed form into a tracker mutation.
func (p sectorsModel) submitForm() tea.Cmd {
	sector, ok := p.selectedSector()
	if !ok {
		return nil
	}
	text := strings.TrimSpace(*p.formText)

	switch p.formType {
	case formNewTask:
		if text == "" {
			return nil
		}
		draft := domain.TaskDraft{
			Text:          text,
			Priority:      *p.formPriority,
			Notes:         strings.TrimSpace(*p.formNotes),
			EstimatedTime: parseMinutes(*p.formEstimate),
		}
		return mutate("Task added to "+sector.Label, func(ctx context.Context) error {
			_, err := p.tracker.AddTask(ctx, sector.ID, draft)
			return err
		})
	case formEditTask:
		if text == "" {
			return nil
		}
		notes := strings.TrimSpace(*p.formNotes)
		priority := *p.formPriority
		estimate := parseMinutes(*p.formEstimate)
		spent := parseMinutes(*p.formSpent)
		progress := min(100, parseMinutes(*p.formProgress))
		patch := domain.TaskPatch{
			Text:          &text,
			Priority:      &priority,
			Notes:         &notes,
			EstimatedTime: &estimate,
			TimeSpent:     &spent,
			Progress:      &progress,
		}
		taskID := p.editingTaskID
		return mutate("Task updated", func(ctx context.Context) error {
			return p.tracker.UpdateTask(ctx, sector.ID, taskID, patch)
		})
	case formEditSector:
		label := strings.TrimSpace(*p.formLabel)
		desc := strings.TrimSpace(*p.formDescription)
		if label == "" {
			return nil
		}
		return mutate("Sector updated", func(ctx context.Context) error {
			return p.tracker.UpdateSector(ctx, sector.ID, domain.SectorPatch{Label: &label, Description: &desc})
		})
	}
	return nil
}

func (p sectorsModel) view() string {
	if p.formActive && p.form != nil {
		title := titleStyle.Render("New Task")
		switch p.formType {
		case formEditTask:
			title = titleStyle.Render("Edit Task")
		case formEditSector:
			title = titleStyle.Render("Edit Sector")
		}
		formView := p.form.View()
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", formView)
		return panelStyle.Width(p.width - 4).Render(content)
	}

	if p.viewingTasks {
		return p.renderTaskView()
	}
	return p.renderSectorList()
}

func (p sectorsModel) renderSectorList() string {
	w := p.width - 4
	title := titleStyle.Render("Sectors")

	if len(p.sectors) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No sectors configured."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-22s %-14s %s", "", "Sector", "Time", "Tasks"))
	rows = append(rows, header)

	for i, s := range p.sectors {
		colorDot := sectorStyle(s.Color).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%s %s %-20s %-14s %d/%d",
			cursor, colorDot, s.Icon, s.Label, s.IdealTime, s.Completed(), len(s.Tasks)))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new task  e: edit sector  enter: tasks"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (p sectorsModel) renderTaskView() string {
	w := p.width - 4
	s, ok := p.selectedSector()
	if !ok {
		return panelStyle.Width(w).Render(mutedStyle.Render("No sector selected"))
	}
	colorDot := sectorStyle(s.Color).Render("●")
	title := titleStyle.Render(fmt.Sprintf("%s %s: Tasks", colorDot, s.Label))
	sub := mutedStyle.Render(s.IdealTime + "  " + s.Description)

	if len(s.Tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			sub,
			"",
			mutedStyle.Render("No tasks. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title, sub, "")

	for i, task := range s.Tasks {
		cursor := "  "
		style := normalItemStyle
		if i == p.taskCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		check := "[ ]"
		if task.Completed {
			check = "[x]"
			if i != p.taskCursor {
				style = doneItemStyle
			}
		}
		meta := priorityStyle(task.Priority).Render(" " + task.Priority.Label())
		if task.EstimatedTime > 0 || task.TimeSpent > 0 {
			meta += mutedStyle.Render(fmt.Sprintf("  %s / %s", formatMinutes(task.TimeSpent), formatMinutes(task.EstimatedTime)))
		}
		if task.Notes != "" {
			meta += mutedStyle.Render("  " + task.Notes)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, check, task.Text))+meta)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space: done/undo  e: edit  d: delete  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
