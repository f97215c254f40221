package ledger

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/julianstephens/tasklit/internal/models"
)

// replay drives a ledger through encoded operations: op%3 picks add/toggle/delete,
// op/3 picks the target task by position.
func replay(ops []int, check func(l *Ledger, op int, err error, before, after int, celebrated bool) bool) bool {
	n := 0
	l := New("2025-01-15", WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	celebrated := false
	l.OnCelebration(func(CelebrationEvent) { celebrated = true })

	for _, op := range ops {
		celebrated = false
		before := len(l.Tasks())
		var err error
		switch op % 3 {
		case 0:
			_, err = l.AddTask(Candidate{Title: "t", Category: models.CategorySocial, Difficulty: models.DifficultyLarge})
		case 1:
			if before > 0 {
				_, err = l.ToggleTask(l.Tasks()[(op/3)%before].ID)
			}
		case 2:
			if before > 0 {
				err = l.DeleteTask(l.Tasks()[(op/3)%before].ID)
			}
		}
		if !check(l, op, err, before, len(l.Tasks()), celebrated) {
			return false
		}
	}
	return true
}

func TestLedgerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	ops := gen.SliceOf(gen.IntRange(0, 29))

	properties.Property("adds succeed exactly while open and grow the list by one", prop.ForAll(
		func(ops []int) bool {
			return replay(ops, func(l *Ledger, op int, err error, before, after int, _ bool) bool {
				if op%3 != 0 {
					return true
				}
				if err == nil {
					return after == before+1
				}
				return errors.Is(err, ErrLocked) && l.AddLocked() && after == before
			})
		},
		ops,
	))

	properties.Property("ids are unique", prop.ForAll(
		func(ops []int) bool {
			return replay(ops, func(l *Ledger, _ int, _ error, _, _ int, _ bool) bool {
				seen := map[string]bool{}
				for _, task := range l.Tasks() {
					if seen[task.ID] {
						return false
					}
					seen[task.ID] = true
				}
				return true
			})
		},
		ops,
	))

	properties.Property("lock is a one-way latch set by any completion", prop.ForAll(
		func(ops []int) bool {
			locked := false
			return replay(ops, func(l *Ledger, _ int, _ error, _, _ int, _ bool) bool {
				if locked && !l.AddLocked() {
					return false
				}
				locked = l.AddLocked()
				if l.Progress().Completed > 0 && !locked {
					return false
				}
				return true
			})
		},
		ops,
	))

	properties.Property("celebration only fires on a toggle that completes the list", prop.ForAll(
		func(ops []int) bool {
			return replay(ops, func(l *Ledger, op int, _ error, _, _ int, celebrated bool) bool {
				if !celebrated {
					return true
				}
				p := l.Progress()
				return op%3 == 1 && p.Total > 0 && p.Completed == p.Total
			})
		},
		ops,
	))

	properties.Property("progress percentage matches counts", prop.ForAll(
		func(ops []int) bool {
			return replay(ops, func(l *Ledger, _ int, _ error, _, _ int, _ bool) bool {
				p := l.Progress()
				if p.Total == 0 {
					return p.Completed == 0 && p.Percentage == 0
				}
				return p.Percentage == float64(p.Completed)/float64(p.Total)*100
			})
		},
		ops,
	))

	properties.TestingRun(t)
}
