package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tasklit/internal/calendar"
	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/feed"
	"github.com/julianstephens/tasklit/internal/insights"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/session"
	"github.com/julianstephens/tasklit/internal/storage"
	"github.com/julianstephens/tasklit/internal/tui/components/feedlist"
	"github.com/julianstephens/tasklit/internal/tui/components/heatmap"
	"github.com/julianstephens/tasklit/internal/tui/components/profile"
	"github.com/julianstephens/tasklit/internal/tui/components/tasklist"
	"github.com/julianstephens/tasklit/internal/utils"
)

type TaskFormModel struct {
	Title       string
	Category    models.Category
	Difficulty  models.Difficulty
	Estimate    string
	Description string
}

type ShareFormModel struct {
	Photo   string
	Caption string
}

// Alert is a modal message dismissed with any key.
type Alert struct {
	Title   string
	Message string
}

type Model struct {
	store          storage.Provider
	session        *session.Session
	feed           *feed.Service
	now            func() time.Time
	state          constants.SessionState
	previousState  constants.SessionState
	keys           KeyMap
	help           help.Model
	taskList       tasklist.Model
	feedList       feedlist.Model
	heatmap        heatmap.Model
	profile        profile.Model
	form           *huh.Form
	taskForm       *TaskFormModel
	shareForm      *ShareFormModel
	sharingTask    *models.Task
	taskToDeleteID string
	alert          *Alert
	day            models.DayRecord
	progress       ledger.Progress
	loadErr        string // shown in place of stale data when a refresh fails
	quitting       bool
	width          int
	height         int
}

func NewModel(store storage.Provider, sess *session.Session, fs *feed.Service) Model {
	m := Model{
		store:    store,
		session:  sess,
		feed:     fs,
		now:      time.Now,
		state:    constants.StateTasks,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		taskList: tasklist.New(nil, 0, 0),
		feedList: feedlist.New(nil, time.Now(), 0, 0),
		heatmap:  heatmap.New(calendar.Month{}, 0, 0),
		profile:  profile.New(models.DefaultSettings(), insights.Summary{PeakHour: -1}, 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads every tab from the store.
func (m *Model) refresh() {
	m.loadErr = ""
	if err := m.refreshTasks(); err != nil {
		m.setLoadErr(err)
	}
	if err := m.refreshFeed(); err != nil {
		m.setLoadErr(err)
	}
	if err := m.refreshHistory(); err != nil {
		m.setLoadErr(err)
	}
}

func (m *Model) setLoadErr(err error) {
	logger.Warn("TUI refresh failed", "error", err)
	m.loadErr = err.Error()
}

func (m *Model) refreshTasks() error {
	day, err := m.session.Day()
	if err != nil {
		return err
	}
	m.day = day
	m.progress = ledger.Restore(day).Progress()
	m.taskList.SetTasks(day.Tasks)
	m.taskList.SetLocked(day.AddLocked)
	return nil
}

func (m *Model) refreshFeed() error {
	posts, err := m.feed.List(0)
	if err != nil {
		return err
	}
	m.feedList.SetPosts(posts, m.now())
	return nil
}

// refreshHistory rebuilds the calendar and profile tabs.
func (m *Model) refreshHistory() error {
	today, err := m.session.Today()
	if err != nil {
		return err
	}
	year, month, err := utils.ParseMonth(today[:7])
	if err != nil {
		return err
	}

	cal, err := calendar.Load(m.store, year, month, today)
	if err != nil {
		return err
	}
	m.heatmap.SetMonth(cal)

	settings := m.session.Settings()
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	summary, err := insights.Load(m.store, settings.Username, today, loc)
	if err != nil {
		return err
	}
	m.profile.SetProfile(settings, summary)
	return nil
}

func (m *Model) showAlert(title, message string) {
	if m.state != constants.StateAlert {
		m.previousState = m.state
	}
	m.alert = &Alert{Title: title, Message: message}
	m.state = constants.StateAlert
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateTasks:
		tk := m.taskList.Keys()
		keys = append(keys, tk.Add, tk.Toggle, tk.Delete, tk.Share)
	case constants.StateFeed:
		keys = append(keys, m.feedList.Keys().Like)
	case constants.StateConfirmDelete:
		keys = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateTasks:
		tk := m.taskList.Keys()
		actions = []key.Binding{tk.Add, tk.Toggle, tk.Delete, tk.Share}
	case constants.StateFeed:
		actions = []key.Binding{m.feedList.Keys().Like}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) progressLine() string {
	return fmt.Sprintf("%d of %d tasks completed  %.0f%%", m.progress.Completed, m.progress.Total, m.progress.Percentage)
}
