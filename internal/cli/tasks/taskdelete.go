package tasks

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
)

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Task to delete: exact ID, list position, or unique ID prefix (checked in that order)."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	// Check if task exists first
	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return cli.Friendly(err)
	}

	if err := ctx.Session.DeleteTask(task.ID); err != nil {
		return cli.Friendly(fmt.Errorf("failed to delete task: %w", err))
	}

	fmt.Printf("Deleted task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
