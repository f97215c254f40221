// Package session owns today's ledger: it resolves the current date in the
// user's timezone, rehydrates the stored day, applies an operation and
// persists the result. Celebration events fan out to the feed and notifier.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
	"github.com/julianstephens/tasklit/internal/utils"
)

type Store interface {
	GetSettings() (models.Settings, error)
	GetDay(date string) (models.DayRecord, error)
	SaveDay(models.DayRecord) error
}

// Publisher shares the celebration post.
type Publisher interface {
	PublishCelebration(author models.Author, completedCount int) (models.Post, error)
}

// Notifier presents the celebration outside the app.
type Notifier interface {
	Notify(title, text string) error
}

// ToggleResult is the outcome of a toggle. Celebration and Post are set only
// when the toggle completed the last open task.
type ToggleResult struct {
	Task        models.Task
	Celebration *ledger.CelebrationEvent
	Post        *models.Post
}

type Session struct {
	store      Store
	publisher  Publisher
	notifier   Notifier
	now        func() time.Time
	ledgerOpts []ledger.Option
}

type Option func(*Session)

func WithClock(fn func() time.Time) Option {
	return func(s *Session) { s.now = fn }
}

// WithLedgerOptions passes options to every ledger the session builds.
func WithLedgerOptions(opts ...ledger.Option) Option {
	return func(s *Session) { s.ledgerOpts = append(s.ledgerOpts, opts...) }
}

// New creates a session. publisher and notifier may be nil.
func New(store Store, publisher Publisher, notifier Notifier, opts ...Option) *Session {
	s := &Session{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns stored settings, falling back to defaults when none are saved.
func (s *Session) Settings() models.Settings {
	settings, err := s.store.GetSettings()
	if err != nil {
		logger.Warn("Using default settings", "error", err)
		return models.DefaultSettings()
	}
	return settings
}

// Today returns today's date in the configured timezone.
func (s *Session) Today() (string, error) {
	return utils.GetTodayInTimezone(s.Settings().Timezone, s.now())
}

// Ledger loads today's ledger. A date with no stored record starts empty and open.
func (s *Session) Ledger() (*ledger.Ledger, error) {
	today, err := s.Today()
	if err != nil {
		return nil, err
	}
	return s.load(today)
}

func (s *Session) load(date string) (*ledger.Ledger, error) {
	rec, err := s.store.GetDay(date)
	if errors.Is(err, storage.ErrNotFound) {
		return ledger.New(date, s.ledgerOpts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load day %s: %w", date, err)
	}
	return ledger.Restore(rec, s.ledgerOpts...), nil
}

func (s *Session) save(l *ledger.Ledger) error {
	if err := s.store.SaveDay(l.Snapshot()); err != nil {
		return fmt.Errorf("failed to save day %s: %w", l.Date(), err)
	}
	return nil
}

// Day returns a snapshot of today's ledger.
func (s *Session) Day() (models.DayRecord, error) {
	l, err := s.Ledger()
	if err != nil {
		return models.DayRecord{}, err
	}
	return l.Snapshot(), nil
}

func (s *Session) AddTask(c ledger.Candidate) (models.Task, error) {
	l, err := s.Ledger()
	if err != nil {
		return models.Task{}, err
	}

	task, err := l.AddTask(c)
	if err != nil {
		return models.Task{}, err
	}

	if err := s.save(l); err != nil {
		return models.Task{}, err
	}

	logger.Debug("Task added", "id", task.ID, "date", l.Date())
	return task, nil
}

func (s *Session) ToggleTask(id string) (ToggleResult, error) {
	l, err := s.Ledger()
	if err != nil {
		return ToggleResult{}, err
	}

	var result ToggleResult
	l.OnCelebration(func(ev ledger.CelebrationEvent) {
		result.Celebration = &ev
	})

	task, err := l.ToggleTask(id)
	if err != nil {
		return ToggleResult{}, err
	}
	result.Task = task

	if err := s.save(l); err != nil {
		return ToggleResult{}, err
	}

	if result.Celebration != nil {
		result.Post = s.celebrate(*result.Celebration)
	}

	return result, nil
}

// celebrate publishes the celebration post and sends a notification.
// Failures are logged; the toggle itself has already been saved.
func (s *Session) celebrate(ev ledger.CelebrationEvent) *models.Post {
	settings := s.Settings()
	logger.Info("All tasks completed", "date", ev.Date, "completed", ev.CompletedCount)

	var published *models.Post
	if s.publisher != nil {
		post, err := s.publisher.PublishCelebration(settings.Author(), ev.CompletedCount)
		if err != nil {
			logger.Warn("Failed to publish celebration post", "error", err)
		} else {
			published = &post
		}
	}

	if s.notifier != nil && settings.NotificationsEnabled {
		if err := s.notifier.Notify(constants.CelebrationTitle, constants.CelebrationMessage); err != nil {
			logger.Warn("Failed to send celebration notification", "error", err)
		}
	}

	return published
}

func (s *Session) DeleteTask(id string) error {
	l, err := s.Ledger()
	if err != nil {
		return err
	}

	if err := l.DeleteTask(id); err != nil {
		return err
	}

	return s.save(l)
}

func (s *Session) Progress() (ledger.Progress, error) {
	l, err := s.Ledger()
	if err != nil {
		return ledger.Progress{}, err
	}
	return l.Progress(), nil
}
