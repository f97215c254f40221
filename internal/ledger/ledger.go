// Package ledger holds the task list for a single day and enforces the daily
// planning rule: once any task is completed, no new tasks may be added to that
// day, and completing every task raises a one-shot celebration event.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/models"
)

// State is the add-lock state of a ledger.
type State int

const (
	// StateOpen accepts new tasks.
	StateOpen State = iota
	// StateLocked is entered on the first completion and never left.
	StateLocked
)

func (s State) String() string {
	if s == StateLocked {
		return "locked"
	}
	return "open"
}

// Candidate is the user input for a new task.
type Candidate struct {
	Title        string
	Category     models.Category
	Difficulty   models.Difficulty
	TimeEstimate string
	Description  string
}

// Progress summarizes completion for the day.
type Progress struct {
	Completed  int
	Total      int
	Percentage float64
}

// CelebrationEvent is emitted when the last open task of the day is completed.
type CelebrationEvent struct {
	Date           string
	CompletedCount int
}

// Listener receives celebration events synchronously from ToggleTask.
type Listener func(CelebrationEvent)

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the uuid generator used for new tasks.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// WithClock replaces time.Now for completion timestamps.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) {
		l.now = fn
	}
}

// Ledger is not safe for concurrent use; it is owned by a single session.
type Ledger struct {
	date      string
	tasks     []models.Task
	addLocked bool
	listeners []Listener
	newID     func() string
	now       func() time.Time
}

// New returns an empty, open ledger for the given date.
func New(date string, opts ...Option) *Ledger {
	l := &Ledger{
		date:  date,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore rebuilds a ledger from a persisted day. The lock is set when the
// record says so or when any stored task is already completed.
func Restore(rec models.DayRecord, opts ...Option) *Ledger {
	l := New(rec.Date, opts...)
	l.tasks = make([]models.Task, len(rec.Tasks))
	copy(l.tasks, rec.Tasks)
	l.addLocked = rec.AddLocked || rec.CompletedCount() > 0
	return l
}

// OnCelebration registers a listener for celebration events.
func (l *Ledger) OnCelebration(fn Listener) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

func (l *Ledger) Date() string {
	return l.date
}

func (l *Ledger) AddLocked() bool {
	return l.addLocked
}

func (l *Ledger) State() State {
	if l.addLocked {
		return StateLocked
	}
	return StateOpen
}

// Tasks returns a copy of the tasks in insertion order.
func (l *Ledger) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Task returns the task with the given id.
func (l *Ledger) Task(id string) (models.Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}
	return l.tasks[i], nil
}

// AddTask appends a new open task built from the candidate.
func (l *Ledger) AddTask(c Candidate) (models.Task, error) {
	if l.addLocked {
		return models.Task{}, &LockedError{Date: l.date}
	}

	title := strings.TrimSpace(c.Title)
	if title == "" {
		return models.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !c.Category.Valid() {
		return models.Task{}, &ValidationError{Field: "category", Reason: "unknown category " + string(c.Category)}
	}
	if !c.Difficulty.Valid() {
		return models.Task{}, &ValidationError{Field: "difficulty", Reason: "unknown difficulty " + string(c.Difficulty)}
	}

	estimate := strings.TrimSpace(c.TimeEstimate)
	if estimate == "" {
		estimate = constants.DefaultTimeEstimate
	}

	task := models.Task{
		ID:           l.newID(),
		Title:        title,
		Category:     c.Category,
		Difficulty:   c.Difficulty,
		TimeEstimate: estimate,
		Description:  strings.TrimSpace(c.Description),
	}
	l.tasks = append(l.tasks, task)
	return task, nil
}

// ToggleTask flips the completion of a task. The first completion of the day
// locks the ledger; the transition into "all complete" notifies listeners.
func (l *Ledger) ToggleTask(id string) (models.Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return models.Task{}, &NotFoundError{ID: id}
	}

	wasAllCompleted := l.allCompleted()

	t := &l.tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		at := l.now()
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	toggled := *t

	if toggled.Completed && !l.addLocked {
		l.addLocked = true
	}

	if !wasAllCompleted && l.allCompleted() {
		ev := CelebrationEvent{Date: l.date, CompletedCount: len(l.tasks)}
		for _, fn := range l.listeners {
			fn(ev)
		}
	}

	return toggled, nil
}

// DeleteTask removes a task regardless of the lock state.
func (l *Ledger) DeleteTask(id string) error {
	i := l.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// Progress reports completed and total counts with the completion percentage.
func (l *Ledger) Progress() Progress {
	p := Progress{Total: len(l.tasks)}
	for _, t := range l.tasks {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// Snapshot returns the persistable form of the ledger.
func (l *Ledger) Snapshot() models.DayRecord {
	return models.DayRecord{
		Date:      l.date,
		AddLocked: l.addLocked,
		Tasks:     l.Tasks(),
	}
}

func (l *Ledger) indexOf(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// allCompleted is false for an empty ledger.
func (l *Ledger) allCompleted() bool {
	if len(l.tasks) == 0 {
		return false
	}
	for _, t := range l.tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
