// Package calendar builds the monthly completion heatmap.
package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/utils"
)

// Intensity selects the heatmap colour of a cell.
type Intensity int

const (
	IntensityOutside Intensity = iota // padding day from a neighbouring month
	IntensityEmpty                    // no tasks planned
	IntensityPartial                  // some tasks planned, not all done
	IntensityPerfect                  // every planned task done
	IntensityToday
)

type Day struct {
	Date           string
	DayOfMonth     int
	InMonth        bool
	TasksCompleted int
	TotalTasks     int
	IsPerfect      bool
	IsToday        bool
}

// Summarize reduces a stored day to its heatmap cell.
func Summarize(rec models.DayRecord) Day {
	d := Day{
		Date:           rec.Date,
		InMonth:        true,
		TasksCompleted: rec.CompletedCount(),
		TotalTasks:     len(rec.Tasks),
		IsPerfect:      rec.IsPerfect(),
	}
	if t, err := time.Parse(constants.DateFormat, rec.Date); err == nil {
		d.DayOfMonth = t.Day()
	}
	return d
}

// CompletionPercentage is 0 for days without tasks.
func (d Day) CompletionPercentage() float64 {
	if d.TotalTasks == 0 {
		return 0
	}
	return float64(d.TasksCompleted) / float64(d.TotalTasks) * 100
}

// Intensity follows the display precedence outside > today > perfect > partial > empty.
func (d Day) Intensity() Intensity {
	switch {
	case !d.InMonth:
		return IntensityOutside
	case d.IsToday:
		return IntensityToday
	case d.IsPerfect:
		return IntensityPerfect
	case d.TotalTasks > 0:
		return IntensityPartial
	default:
		return IntensityEmpty
	}
}

type Month struct {
	Year  int
	Month time.Month
	Days  []Day // one per date of the month, in order
}

// Stats summarizes the month's in-month days.
type Stats struct {
	PerfectDays    int
	ActiveDays     int
	CompletionRate int // percent of active days that were perfect
}

// BuildMonth lays out one Day per date of the month. records may cover any
// range; entries outside the month are ignored. today is a YYYY-MM-DD date.
func BuildMonth(year int, month time.Month, records []models.DayRecord, today string) Month {
	byDate := make(map[string]models.DayRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	m := Month{Year: year, Month: month}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(constants.DateFormat)
		day := Summarize(models.DayRecord{Date: date})
		if rec, ok := byDate[date]; ok {
			day = Summarize(rec)
		}
		day.IsToday = date == today
		m.Days = append(m.Days, day)
	}
	return m
}

// Store reads stored days in an inclusive date range.
type Store interface {
	GetDays(start, end string) ([]models.DayRecord, error)
}

// Load reads the month's records from store and builds the month.
func Load(store Store, year int, month time.Month, today string) (Month, error) {
	start, end := utils.MonthRange(year, month)
	records, err := store.GetDays(start, end)
	if err != nil {
		return Month{}, fmt.Errorf("failed to load days for %s: %w", start[:7], err)
	}
	return BuildMonth(year, month, records, today), nil
}

func (m Month) Stats() Stats {
	var s Stats
	for _, d := range m.Days {
		if !d.InMonth {
			continue
		}
		if d.IsPerfect {
			s.PerfectDays++
		}
		if d.TotalTasks > 0 {
			s.ActiveDays++
		}
	}
	if s.ActiveDays > 0 {
		s.CompletionRate = int(math.Round(float64(s.PerfectDays) / float64(s.ActiveDays) * 100))
	}
	return s
}

// Title is the month heading, e.g. "January 2025".
func (m Month) Title() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Weeks arranges the month into Sunday-first rows of seven, padding the first
// and last week with out-of-month days.
func (m Month) Weeks() [][]Day {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)

	var cells []Day
	for i := int(first.Weekday()); i > 0; i-- {
		cells = append(cells, padding(first.AddDate(0, 0, -i)))
	}
	cells = append(cells, m.Days...)
	next := first.AddDate(0, 1, 0)
	for i := 0; len(cells)%7 != 0; i++ {
		cells = append(cells, padding(next.AddDate(0, 0, i)))
	}

	weeks := make([][]Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

func padding(t time.Time) Day {
	return Day{Date: t.Format(constants.DateFormat), DayOfMonth: t.Day()}
}
