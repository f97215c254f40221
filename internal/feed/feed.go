// Package feed publishes and lists the social posts shown on the home tab.
package feed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/storage"
)

// ErrPostNotFound is returned for likes on an unknown post.
var ErrPostNotFound = errors.New("post not found")

// Store is the subset of storage.Provider the feed needs.
type Store interface {
	AddPost(models.Post) error
	GetPost(id string) (models.Post, error)
	UpdatePost(models.Post) error
	GetPosts(limit int) ([]models.Post, error)
}

type Service struct {
	store Store
	newID func() string
	now   func() time.Time
}

type Option func(*Service)

func WithClock(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the newest posts first. A non-positive limit uses the default page size.
func (s *Service) List(limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = constants.DefaultFeedLimit
	}
	posts, err := s.store.GetPosts(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return posts, nil
}

// ToggleLike flips the viewer's like on a post and adjusts the count.
func (s *Service) ToggleLike(id string) (models.Post, error) {
	post, err := s.store.GetPost(id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Post{}, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	if err != nil {
		return models.Post{}, err
	}

	if post.Liked {
		post.Liked = false
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.Liked = true
		post.Likes++
	}

	if err := s.store.UpdatePost(post); err != nil {
		return models.Post{}, fmt.Errorf("failed to update post %s: %w", id, err)
	}
	return post, nil
}

// PublishTask shares a completed task with a photo reference.
func (s *Service) PublishTask(author models.Author, task models.Task, imageRef, caption string) (models.Post, error) {
	if !task.Completed {
		return models.Post{}, &ledger.ValidationError{Field: "task", Reason: "only completed tasks can be shared"}
	}
	if strings.TrimSpace(imageRef) == "" {
		return models.Post{}, &ledger.ValidationError{Field: "photo", Reason: "a photo is required to share a task"}
	}

	post := models.Post{
		ID:             s.newID(),
		Kind:           models.PostKindTask,
		Author:         author,
		TaskTitle:      task.Title,
		TaskCategory:   string(task.Category),
		TaskDifficulty: task.Difficulty,
		ImageRef:       strings.TrimSpace(imageRef),
		Caption:        strings.TrimSpace(caption),
		CreatedAt:      s.now(),
	}
	if err := s.store.AddPost(post); err != nil {
		return models.Post{}, fmt.Errorf("failed to publish post: %w", err)
	}

	logger.Info("Published task post", "post", post.ID, "task", task.ID)
	return post, nil
}

// PublishCelebration shares the "all tasks completed" achievement.
func (s *Service) PublishCelebration(author models.Author, completedCount int) (models.Post, error) {
	post := models.Post{
		ID:             s.newID(),
		Kind:           models.PostKindCelebration,
		Author:         author,
		TaskTitle:      constants.CelebrationPostTitle,
		TaskCategory:   constants.CelebrationPostCategory,
		TaskDifficulty: models.DifficultyLarge,
		Caption:        fmt.Sprintf(constants.CelebrationCaptionFmt, author.Name),
		TasksCompleted: completedCount,
		CreatedAt:      s.now(),
	}
	if err := s.store.AddPost(post); err != nil {
		return models.Post{}, fmt.Errorf("failed to publish celebration: %w", err)
	}

	logger.Info("Published celebration post", "post", post.ID, "completed", completedCount)
	return post, nil
}

// TimeAgo renders the compact relative timestamps used on feed cards.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
