package tasks

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/models"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Category    string `short:"c" help:"Category (Fitness|Learning|Work|Lifestyle|Creative|Social)." default:"Work"`
	Difficulty  string `short:"d" help:"Difficulty (Small|Medium|Large)." default:"Medium"`
	Estimate    string `short:"t" help:"Time estimate, e.g. \"45 min\"."`
	Description string `help:"Optional description."`
}

func (c *TaskAddCmd) Validate() error {
	if _, err := models.ParseCategory(c.Category); err != nil {
		return err
	}
	if _, err := models.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	category, err := models.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	difficulty, err := models.ParseDifficulty(c.Difficulty)
	if err != nil {
		return err
	}

	task, err := ctx.Session.AddTask(ledger.Candidate{
		Title:        c.Title,
		Category:     category,
		Difficulty:   difficulty,
		TimeEstimate: c.Estimate,
		Description:  c.Description,
	})
	if err != nil {
		return cli.Friendly(err)
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
