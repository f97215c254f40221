// Package insights derives the profile overview, "task DNA" cards and
// achievements from stored history.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/models"
)

type CategoryCount struct {
	Category models.Category
	Count    int
	Share    float64 // percent of completed tasks
}

type Summary struct {
	PerfectDays      int
	TasksCompleted   int
	TotalPoints      int
	Categories       []CategoryCount // every category, display order
	FavoriteCategory models.Category // empty when nothing is completed
	PeakHour         int             // hour with most completions in the user's zone, -1 if unknown
	ConsistencyScore int             // percent of planned tasks completed
	ChallengeLevel   models.Difficulty
	LongestStreak    int // consecutive dates with at least one completion
	LikesReceived    int
	PostsShared      int
}

// Insight is one "task DNA" card.
type Insight struct {
	Title       string
	Value       string
	Description string
}

// Store reads the history the profile is computed from.
type Store interface {
	GetDays(start, end string) ([]models.DayRecord, error)
	GetPosts(limit int) ([]models.Post, error)
}

// earliestDate sorts before any stored date.
const earliestDate = "0000-01-01"

// Load computes the summary over every stored day up to and including today.
// Completion times are read in loc.
func Load(store Store, username, today string, loc *time.Location) (Summary, error) {
	days, err := store.GetDays(earliestDate, today)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load history: %w", err)
	}
	posts, err := store.GetPosts(0)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load posts: %w", err)
	}
	return Compute(days, posts, username, loc), nil
}

// Compute summarizes days and the posts authored by username. The peak hour
// is bucketed in loc, falling back to the machine zone when loc is nil.
func Compute(days []models.DayRecord, posts []models.Post, username string, loc *time.Location) Summary {
	if loc == nil {
		loc = time.Local
	}
	s := Summary{PeakHour: -1}

	counts := make(map[models.Category]int)
	difficulties := make(map[models.Difficulty]int)
	hours := make(map[int]int)
	planned := 0

	for _, day := range days {
		if day.IsPerfect() {
			s.PerfectDays++
		}
		planned += len(day.Tasks)
		for _, t := range day.Tasks {
			if !t.Completed {
				continue
			}
			s.TasksCompleted++
			s.TotalPoints += t.Points()
			counts[t.Category]++
			difficulties[t.Difficulty]++
			if t.CompletedAt != nil {
				hours[t.CompletedAt.In(loc).Hour()]++
			}
		}
	}

	best := 0
	for _, c := range models.Categories {
		cc := CategoryCount{Category: c, Count: counts[c]}
		if s.TasksCompleted > 0 {
			cc.Share = float64(cc.Count) / float64(s.TasksCompleted) * 100
		}
		s.Categories = append(s.Categories, cc)
		if cc.Count > best {
			best = cc.Count
			s.FavoriteCategory = c
		}
	}

	best = 0
	for _, d := range models.Difficulties {
		if difficulties[d] > best {
			best = difficulties[d]
			s.ChallengeLevel = d
		}
	}

	best = 0
	for h := 0; h < 24; h++ {
		if hours[h] > best {
			best = hours[h]
			s.PeakHour = h
		}
	}

	if planned > 0 {
		s.ConsistencyScore = int(math.Round(float64(s.TasksCompleted) / float64(planned) * 100))
	}

	s.LongestStreak = longestStreak(days)

	for _, p := range posts {
		if p.Author.Username != username {
			continue
		}
		s.PostsShared++
		s.LikesReceived += p.Likes
	}

	return s
}

func longestStreak(days []models.DayRecord) int {
	var active []time.Time
	for _, day := range days {
		if day.CompletedCount() == 0 {
			continue
		}
		t, err := time.Parse(constants.DateFormat, day.Date)
		if err != nil {
			continue
		}
		active = append(active, t)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Before(active[j]) })

	longest, run := 0, 0
	for i, t := range active {
		switch {
		case i > 0 && t.Equal(active[i-1]):
			continue
		case i > 0 && t.Equal(active[i-1].AddDate(0, 0, 1)):
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Insights renders the task DNA cards.
func (s Summary) Insights() []Insight {
	peak := Insight{Title: "Peak Performance", Value: "-", Description: "Complete a few tasks to find your rhythm"}
	if s.PeakHour >= 0 {
		peak.Value = time.Date(2000, 1, 1, s.PeakHour, 0, 0, 0, time.UTC).Format("3:04 PM")
		switch {
		case s.PeakHour < 12:
			peak.Description = "You're most productive in the morning"
		case s.PeakHour < 17:
			peak.Description = "You're most productive in the afternoon"
		default:
			peak.Description = "You're most productive in the evening"
		}
	}

	favorite := Insight{Title: "Favorite Category", Value: "-", Description: "Your top completed category"}
	if s.FavoriteCategory != "" {
		favorite.Value = string(s.FavoriteCategory)
	}

	consistency := Insight{
		Title: "Consistency Score",
		Value: fmt.Sprintf("%d%%", s.ConsistencyScore),
	}
	switch {
	case s.ConsistencyScore >= 80:
		consistency.Description = "Above average task completion rate"
	case s.ConsistencyScore >= 50:
		consistency.Description = "Steady task completion rate"
	default:
		consistency.Description = "Plenty of room to grow"
	}

	challenge := Insight{Title: "Challenge Level", Value: "-", Description: "Finish tasks to see your preferred difficulty"}
	switch s.ChallengeLevel {
	case models.DifficultySmall:
		challenge.Value, challenge.Description = "Small", "You prefer quick wins"
	case models.DifficultyMedium:
		challenge.Value, challenge.Description = "Medium", "You prefer balanced difficulty tasks"
	case models.DifficultyLarge:
		challenge.Value, challenge.Description = "Large", "You take on big challenges"
	}

	return []Insight{peak, favorite, consistency, challenge}
}

type Achievement struct {
	ID          string
	Title       string
	Description string
	Progress    int
	Target      int
}

func (a Achievement) Unlocked() bool {
	return a.Progress >= a.Target
}

// Percent is the progress toward the target, capped at 100.
func (a Achievement) Percent() int {
	if a.Target <= 0 || a.Progress >= a.Target {
		return 100
	}
	return a.Progress * 100 / a.Target
}

const (
	StreakMasterTarget   = 7
	FitnessFanaticTarget = 50
	LearningLegendTarget = 100
	SocialStarTarget     = 100
)

// Achievements evaluates the badge list against a summary.
func Achievements(s Summary) []Achievement {
	byCategory := make(map[models.Category]int)
	for _, c := range s.Categories {
		byCategory[c.Category] = c.Count
	}

	return []Achievement{
		{
			ID: "streak-master", Title: "Streak Master",
			Description: "Complete tasks for 7 days straight",
			Progress:    s.LongestStreak, Target: StreakMasterTarget,
		},
		{
			ID: "fitness-fanatic", Title: "Fitness Fanatic",
			Description: "Complete 50 fitness tasks",
			Progress:    byCategory[models.CategoryFitness], Target: FitnessFanaticTarget,
		},
		{
			ID: "learning-legend", Title: "Learning Legend",
			Description: "Complete 100 learning tasks",
			Progress:    byCategory[models.CategoryLearning], Target: LearningLegendTarget,
		},
		{
			ID: "social-star", Title: "Social Star",
			Description: "Get 100 likes on your posts",
			Progress:    s.LikesReceived, Target: SocialStarTarget,
		},
	}
}
