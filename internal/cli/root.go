package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/tasklit/internal/backup"
	tlerrors "github.com/julianstephens/tasklit/internal/errors"
	"github.com/julianstephens/tasklit/internal/feed"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/models"
	"github.com/julianstephens/tasklit/internal/notifier"
	"github.com/julianstephens/tasklit/internal/session"
	"github.com/julianstephens/tasklit/internal/storage"
	"github.com/julianstephens/tasklit/internal/storage/sqlite"
)

type Context struct {
	Store    storage.Provider
	Session  *session.Session
	Feed     *feed.Service
	Notifier *notifier.Notifier
	Now      func() time.Time
}

// NewContext wires the feed, notifier and day session around store.
func NewContext(store storage.Provider) *Context {
	fs := feed.New(store)
	n := notifier.New()
	return &Context{
		Store:    store,
		Session:  session.New(store, fs, n),
		Feed:     fs,
		Notifier: n,
		Now:      time.Now,
	}
}

// IsFileStore reports whether the store is a local SQLite file that can be backed up.
func (c *Context) IsFileStore() bool {
	_, ok := c.Store.(*sqlite.Store)
	return ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsFileStore() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveTask finds one of today's tasks. An exact id wins, then a 1-based
// list position, then a unique id prefix. A number that is both a position
// and a prefix of another task's id is rejected as ambiguous.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	day, err := c.Session.Day()
	if err != nil {
		return models.Task{}, err
	}

	ref = strings.TrimSpace(ref)
	var prefixed []models.Task
	for _, t := range day.Tasks {
		if t.ID == ref {
			return t, nil
		}
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			prefixed = append(prefixed, t)
		}
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(day.Tasks) {
		byPos := day.Tasks[n-1]
		for _, t := range prefixed {
			if t.ID != byPos.ID {
				return models.Task{}, fmt.Errorf("task ref %q matches position %d and id %s; use more of the id", ref, n, t.ID)
			}
		}
		return byPos, nil
	}

	switch len(prefixed) {
	case 0:
		return models.Task{}, &ledger.NotFoundError{ID: ref}
	case 1:
		return prefixed[0], nil
	default:
		return models.Task{}, fmt.Errorf("task id prefix %q is ambiguous", ref)
	}
}

// UserError carries the user-facing title and message for an error while
// keeping the original error available to errors.Is and errors.As.
type UserError struct {
	Title   string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Friendly converts ledger errors into UserErrors. Other errors pass through.
func Friendly(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ledger.ErrLocked) || errors.Is(err, ledger.ErrValidation) || errors.Is(err, ledger.ErrNotFound) {
		title, msg := tlerrors.UserMessage(err)
		return &UserError{Title: title, Message: msg, Err: err}
	}
	return err
}

// ProgressBar renders a fixed-width text progress bar.
func ProgressBar(p ledger.Progress, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(p.Percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
