package heatmap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tasklit/internal/calendar"
)

var (
	cellStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)

	intensityStyles = map[calendar.Intensity]lipgloss.Style{
		calendar.IntensityOutside: cellStyle.Foreground(lipgloss.Color("#9CA3AF")),
		calendar.IntensityEmpty:   cellStyle.Foreground(lipgloss.Color("#6B7280")).Background(lipgloss.Color("#E5E7EB")),
		calendar.IntensityPartial: cellStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#F59E0B")),
		calendar.IntensityPerfect: cellStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#10B981")),
		calendar.IntensityToday:   cellStyle.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#8B5CF6")).Bold(true),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	headerStyle = cellStyle.Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Render draws the month grid, the stats line and the legend.
func Render(m calendar.Month) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n\n")

	header := make([]string, len(weekdays))
	for i, wd := range weekdays {
		header[i] = headerStyle.Render(wd[:2])
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = intensityStyles[d.Intensity()].Render(fmt.Sprintf("%d", d.DayOfMonth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderStats(m.Stats()))
	b.WriteString("\n\n")
	b.WriteString(RenderLegend())
	return b.String()
}

func RenderStats(s calendar.Stats) string {
	stat := func(value, label string) string {
		return valueStyle.Render(value) + " " + labelStyle.Render(label)
	}
	return strings.Join([]string{
		stat(fmt.Sprintf("%d", s.PerfectDays), "Perfect Days"),
		stat(fmt.Sprintf("%d", s.ActiveDays), "Active Days"),
		stat(fmt.Sprintf("%d%%", s.CompletionRate), "Success Rate"),
	}, "   ")
}

func RenderLegend() string {
	item := func(i calendar.Intensity, label string) string {
		return intensityStyles[i].Width(2).Render(" ") + " " + labelStyle.Render(label)
	}
	return strings.Join([]string{
		item(calendar.IntensityPerfect, "Perfect Day (100%)"),
		item(calendar.IntensityPartial, "Partial Progress"),
		item(calendar.IntensityToday, "Today"),
		item(calendar.IntensityEmpty, "No Tasks"),
	}, "  ")
}

type Model struct {
	month  calendar.Month
	width  int
	height int
}

func New(month calendar.Month, width, height int) Model {
	return Model{month: month, width: width, height: height}
}

func (m *Model) SetMonth(month calendar.Month) {
	m.month = month
}

func (m Model) Month() calendar.Month {
	return m.month
}

func (m Model) View() string {
	if len(m.month.Days) == 0 {
		return "\n  No calendar data."
	}
	return Render(m.month)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
