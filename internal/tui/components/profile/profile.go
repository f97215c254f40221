package profile

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tasklit/internal/insights"
	"github.com/julianstephens/tasklit/internal/models"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	unlocked     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	barFull      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6"))
	barEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
)

const barWidth = 20

// Render draws the profile header, overview stats, category breakdown,
// task DNA cards and achievements.
func Render(settings models.Settings, s insights.Summary) string {
	var b strings.Builder

	b.WriteString(nameStyle.Render(settings.DisplayName))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(settings.Username))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Overview"))
	b.WriteString("\n")
	overview := []string{
		fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("%d", s.PerfectDays)), mutedStyle.Render("Perfect Days")),
		fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("%d", s.TasksCompleted)), mutedStyle.Render("Tasks Done")),
		fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("%d", s.TotalPoints)), mutedStyle.Render("Points")),
		fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("%d", s.LongestStreak)), mutedStyle.Render("Best Streak")),
	}
	b.WriteString(strings.Join(overview, "   "))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Task Categories"))
	b.WriteString("\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&b, "  %-10s %s %3.0f%% (%d)\n", c.Category, bar(c.Share, barWidth), c.Share, c.Count)
	}

	b.WriteString(sectionStyle.Render("Task DNA"))
	b.WriteString("\n")
	for _, in := range s.Insights() {
		fmt.Fprintf(&b, "  %-18s %s\n", in.Title, valueStyle.Render(in.Value))
		fmt.Fprintf(&b, "  %-18s %s\n", "", mutedStyle.Render(in.Description))
	}

	b.WriteString(sectionStyle.Render("Achievements"))
	b.WriteString("\n")
	for _, a := range insights.Achievements(s) {
		mark := "○"
		title := a.Title
		if a.Unlocked() {
			mark = unlocked.Render("✓")
			title = unlocked.Render(a.Title)
		}
		fmt.Fprintf(&b, "  %s %s %s\n", mark, title, mutedStyle.Render(fmt.Sprintf("%d/%d", min(a.Progress, a.Target), a.Target)))
		fmt.Fprintf(&b, "    %s %s\n", bar(float64(a.Percent()), barWidth), mutedStyle.Render(a.Description))
	}

	return b.String()
}

func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}

type Model struct {
	settings models.Settings
	summary  insights.Summary
	width    int
	height   int
}

func New(settings models.Settings, summary insights.Summary, width, height int) Model {
	return Model{settings: settings, summary: summary, width: width, height: height}
}

func (m *Model) SetProfile(settings models.Settings, summary insights.Summary) {
	m.settings = settings
	m.summary = summary
}

func (m Model) View() string {
	return Render(m.settings, m.summary)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
