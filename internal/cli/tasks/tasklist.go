package tasks

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/constants"
)

type TaskListCmd struct {
	ShowIDs bool `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Session.Day()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	fmt.Printf("Today's Tasks (%s)\n", day.Date)
	if day.AddLocked {
		fmt.Println(constants.LockedNotice)
	}
	if len(day.Tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'tasklit task add'.")
		return nil
	}

	for i, task := range day.Tasks {
		check := "[ ]"
		if task.Completed {
			check = "[x]"
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", task.ID)
		}

		fmt.Printf("  %d. %s %s%s\n", i+1, check, task.Title, idStr)
		fmt.Printf("       %s | %s +%d | %s\n", task.Category, task.Difficulty, task.Points(), task.TimeEstimate)
		if task.Description != "" {
			fmt.Printf("       %s\n", task.Description)
		}
	}

	return nil
}
