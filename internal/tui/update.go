package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tasklit/internal/constants"
	tlerrors "github.com/julianstephens/tasklit/internal/errors"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/tui/components/feedlist"
	"github.com/julianstephens/tasklit/internal/tui/components/tasklist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Leave room for the tabs, banner and help
		w, h := msg.Width-4, msg.Height-8
		m.taskList.SetSize(w, h)
		m.feedList.SetSize(w, h)
		m.heatmap.SetSize(w, h)
		m.profile.SetSize(w, h)
		if m.form != nil {
			m.form = m.form.WithWidth(w)
		}
		return m, nil
	}

	switch m.state {
	case constants.StateAddTask:
		return m.updateForm(msg, m.submitTask)
	case constants.StateShareTask:
		return m.updateForm(msg, m.submitShare)
	case constants.StateAlert:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.alert = nil
			m.state = m.previousState
		}
		return m, nil
	case constants.StateConfirmDelete:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Confirm):
				m.state = constants.StateTasks
				if err := m.session.DeleteTask(m.taskToDeleteID); err != nil {
					m.showError(err)
				}
				m.taskToDeleteID = ""
				m.refresh()
			case key.Matches(msg, m.keys.Cancel):
				m.taskToDeleteID = ""
				m.state = constants.StateTasks
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		if m.day.AddLocked {
			m.showAlert(constants.LockedTitle, constants.LockedMessage)
			return m, nil
		}
		m.taskForm = &TaskFormModel{Category: models.CategoryWork, Difficulty: models.DifficultyMedium}
		m.form = newTaskForm(m.taskForm).WithWidth(max(m.width-4, 40))
		m.state = constants.StateAddTask
		return m, m.form.Init()

	case tasklist.ToggleTaskMsg:
		result, err := m.session.ToggleTask(msg.ID)
		if err != nil {
			m.showError(err)
			return m, nil
		}
		m.refresh()
		if result.Celebration != nil {
			m.showAlert(constants.CelebrationTitle, constants.CelebrationMessage)
		}
		return m, nil

	case tasklist.DeleteTaskMsg:
		m.taskToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case tasklist.ShareTaskMsg:
		task := msg.Task
		m.sharingTask = &task
		m.shareForm = &ShareFormModel{}
		m.form = newShareForm(m.shareForm, task).WithWidth(max(m.width-4, 40))
		m.state = constants.StateShareTask
		return m, m.form.Init()

	case feedlist.LikePostMsg:
		if _, err := m.feed.ToggleLike(msg.ID); err != nil {
			m.showError(err)
			return m, nil
		}
		if err := m.refreshFeed(); err != nil {
			m.setLoadErr(err)
		}
		if err := m.refreshHistory(); err != nil {
			m.setLoadErr(err)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % constants.MainTabs
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + constants.MainTabs) % constants.MainTabs
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case constants.StateFeed:
		m.feedList, cmd = m.feedList.Update(msg)
	}
	return m, cmd
}

func (m Model) filtering() bool {
	switch m.state {
	case constants.StateTasks:
		return m.taskList.Filtering()
	case constants.StateFeed:
		return m.feedList.Filtering()
	}
	return false
}

// updateForm drives the active huh form and calls submit once it completes.
func (m Model) updateForm(msg tea.Msg, submit func() Model) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return submit(), nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.taskForm = nil
	m.shareForm = nil
	m.sharingTask = nil
	m.state = constants.StateTasks
}

// submitTask adds the task described by the add-task form.
func (m Model) submitTask() Model {
	f := m.taskForm
	m.closeForm()
	if f == nil {
		return m
	}

	_, err := m.session.AddTask(ledger.Candidate{
		Title:        f.Title,
		Category:     f.Category,
		Difficulty:   f.Difficulty,
		TimeEstimate: f.Estimate,
		Description:  f.Description,
	})
	if err != nil {
		m.showError(err)
		return m
	}
	m.refresh()
	return m
}

// submitShare publishes the completed task with the photo reference from the share form.
func (m Model) submitShare() Model {
	f, task := m.shareForm, m.sharingTask
	m.closeForm()
	if f == nil || task == nil {
		return m
	}

	author := m.session.Settings().Author()
	if _, err := m.feed.PublishTask(author, *task, f.Photo, f.Caption); err != nil {
		m.showError(err)
		return m
	}
	m.refresh()
	m.state = constants.StateFeed
	m.showAlert(constants.PostedTitle, constants.PostedMessage)
	return m
}

func (m *Model) showError(err error) {
	title, message := tlerrors.UserMessage(err)
	m.showAlert(title, message)
}

func newTaskForm(f *TaskFormModel) *huh.Form {
	categories := make([]huh.Option[models.Category], len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = huh.NewOption(string(c), c)
	}
	difficulties := make([]huh.Option[models.Difficulty], len(models.Difficulties))
	for i, d := range models.Difficulties {
		difficulties[i] = huh.NewOption(string(d), d)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task Title").
				Placeholder("What do you want to accomplish?").
				Value(&f.Title),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categories...).
				Value(&f.Category),
			huh.NewSelect[models.Difficulty]().
				Title("Difficulty").
				Options(difficulties...).
				Value(&f.Difficulty),
			huh.NewInput().
				Title("Time Estimate").
				Placeholder(constants.DefaultTimeEstimate).
				Value(&f.Estimate),
			huh.NewText().
				Title("Description (optional)").
				Value(&f.Description),
		),
	)
}

func newShareForm(f *ShareFormModel, task models.Task) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Share Your Achievement").
				Description(task.Title),
			huh.NewInput().
				Title("Photo").
				Placeholder("path or URL of your photo").
				Value(&f.Photo),
			huh.NewInput().
				Title("Caption").
				Placeholder("Add a caption...").
				Value(&f.Caption),
		),
	)
}
