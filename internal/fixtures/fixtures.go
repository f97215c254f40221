// Package fixtures seeds a fresh store with a sample profile, feed and two
// weeks of history so every screen has something to show.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

//go:embed seed.json
var seedJSON []byte

// ErrNotEmpty is returned when Apply finds existing data.
var ErrNotEmpty = errors.New("store already contains data")

type Store interface {
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error
	GetDay(date string) (models.DayRecord, error)
	SaveDay(models.DayRecord) error
	AddPost(models.Post) error
	GetPosts(limit int) ([]models.Post, error)
}

type Profile struct {
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
}

// SeedPost is a post whose timestamp is relative to the seeding time.
type SeedPost struct {
	models.Post
	HoursAgo int `json:"hours_ago"`
}

// HistoryDay describes a past day by its completion counts.
type HistoryDay struct {
	DaysAgo   int `json:"days_ago"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type Seed struct {
	Profile Profile       `json:"profile"`
	Today   []models.Task `json:"today"`
	Posts   []SeedPost    `json:"posts"`
	History []HistoryDay  `json:"history"`
}

// Load parses the embedded seed data.
func Load() (Seed, error) {
	var seed Seed
	if err := json.Unmarshal(seedJSON, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed data: %w", err)
	}
	for _, day := range seed.History {
		if day.Completed > day.Total || day.DaysAgo < 1 {
			return Seed{}, fmt.Errorf("invalid history entry %+v", day)
		}
	}
	return seed, nil
}

// Apply writes the seed into an empty store. now is the current time in the
// user's timezone; its date becomes "today".
func Apply(store Store, now time.Time) error {
	seed, err := Load()
	if err != nil {
		return err
	}

	today := now.Format(constants.DateFormat)
	if _, err := store.GetDay(today); err == nil {
		return ErrNotEmpty
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if posts, err := store.GetPosts(1); err != nil {
		return err
	} else if len(posts) > 0 {
		return ErrNotEmpty
	}

	settings, err := store.GetSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	settings.DisplayName = seed.Profile.DisplayName
	settings.Username = seed.Profile.Username
	settings.AvatarURL = seed.Profile.AvatarURL
	if err := store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	for _, h := range seed.History {
		if err := store.SaveDay(h.record(now)); err != nil {
			return fmt.Errorf("failed to seed history: %w", err)
		}
	}

	if err := store.SaveDay(seed.todayRecord(now)); err != nil {
		return fmt.Errorf("failed to seed today: %w", err)
	}

	for _, sp := range seed.Posts {
		post := sp.Post
		post.CreatedAt = now.Add(-time.Duration(sp.HoursAgo) * time.Hour)
		if err := store.AddPost(post); err != nil {
			return fmt.Errorf("failed to seed posts: %w", err)
		}
	}

	logger.Info("Seeded sample data", "days", len(seed.History)+1, "posts", len(seed.Posts))
	return nil
}

func (s Seed) todayRecord(now time.Time) models.DayRecord {
	rec := models.DayRecord{Date: now.Format(constants.DateFormat)}
	for _, t := range s.Today {
		if t.Completed && t.CompletedAt == nil {
			at := now.Add(-time.Hour)
			t.CompletedAt = &at
		}
		rec.Tasks = append(rec.Tasks, t)
	}
	rec.AddLocked = rec.CompletedCount() > 0
	return rec
}

// record expands a history entry into concrete tasks, rotating through the
// categories and difficulties so profile insights have variety.
func (h HistoryDay) record(now time.Time) models.DayRecord {
	day := now.AddDate(0, 0, -h.DaysAgo)
	date := day.Format(constants.DateFormat)
	rec := models.DayRecord{Date: date, AddLocked: h.Completed > 0}

	for i := 0; i < h.Total; i++ {
		t := models.Task{
			ID:           fmt.Sprintf("seed-%s-%d", date, i+1),
			Title:        fmt.Sprintf("Seeded task %d", i+1),
			Category:     models.Categories[(h.DaysAgo+i)%len(models.Categories)],
			Difficulty:   models.Difficulties[i%len(models.Difficulties)],
			TimeEstimate: constants.DefaultTimeEstimate,
		}
		if i < h.Completed {
			at := time.Date(day.Year(), day.Month(), day.Day(), 7+i, 30, 0, 0, day.Location())
			t.Completed = true
			t.CompletedAt = &at
		}
		rec.Tasks = append(rec.Tasks, t)
	}
	return rec
}
