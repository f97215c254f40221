package storage

import (
	"errors"

	"github.com/julianstephens/tasklit/internal/models"
)

// ErrNotFound is returned when a requested day or post does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Days
	// GetDay returns the stored record for the given date, or ErrNotFound
	// if nothing has been saved for that day yet.
	GetDay(date string) (models.DayRecord, error)
	// SaveDay replaces the stored record for rec.Date, keeping task order.
	SaveDay(rec models.DayRecord) error
	// GetDays returns every stored day between startDate and endDate
	// inclusive, ordered by date.
	GetDays(startDate, endDate string) ([]models.DayRecord, error)

	// Posts
	AddPost(models.Post) error
	GetPost(id string) (models.Post, error)
	UpdatePost(models.Post) error
	// GetPosts returns up to limit posts, newest first. A limit <= 0 returns all.
	GetPosts(limit int) ([]models.Post, error)

	// Utils
	GetConfigPath() string
}
