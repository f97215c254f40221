package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/constants"
)

var tabTitles = []string{"Tasks", "Feed", "Calendar", "Profile"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateTasks:
		content = m.viewTasks()
	case constants.StateFeed:
		content = docStyle.Render(m.feedList.View())
	case constants.StateCalendar:
		content = docStyle.Render(m.heatmap.View())
	case constants.StateProfile:
		content = docStyle.Render(m.profile.View())
	case constants.StateAddTask, constants.StateShareTask:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateAlert:
		content = m.viewAlert()
	}

	parts := []string{m.viewTabs(), content}
	if m.loadErr != "" {
		parts = append(parts, dangerStyle.Render("  "+m.loadErr))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == constants.StateAlert {
		active = m.previousState
	}
	if active >= constants.MainTabs {
		active = constants.StateTasks
	}

	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTasks() string {
	header := []string{
		progressStyle.Render(m.progressLine()),
		progressStyle.Render(cli.ProgressBar(m.progress, 30)),
	}
	if m.day.AddLocked {
		header = append(header, "", noticeStyle.Render(constants.LockedNotice))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, header...),
		m.taskList.View(),
	))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this task?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewAlert() string {
	if m.alert == nil {
		return ""
	}
	box := alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		alertTitleStyle.Render(m.alert.Title),
		"",
		m.alert.Message,
		"",
		mutedStyle.Render("press any key"),
	))
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, box)
}
