package tasks

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/constants"
)

type TaskToggleCmd struct {
	Task string `arg:"" help:"Exact task ID, list position, or unique ID prefix (checked in that order)."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.ResolveTask(c.Task)
	if err != nil {
		return cli.Friendly(err)
	}

	result, err := ctx.Session.ToggleTask(task.ID)
	if err != nil {
		return cli.Friendly(err)
	}

	if result.Task.Completed {
		fmt.Printf("Completed: %s (+%d points)\n", result.Task.Title, result.Task.Points())
	} else {
		fmt.Printf("Reopened: %s\n", result.Task.Title)
	}

	if result.Celebration != nil {
		fmt.Println()
		fmt.Println(constants.CelebrationTitle)
		fmt.Println(constants.CelebrationMessage)
		if result.Post != nil {
			fmt.Printf("Shared to feed: %s\n", result.Post.Caption)
		}
	}

	return nil
}
