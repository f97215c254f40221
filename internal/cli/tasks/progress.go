package tasks

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
)

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Session.Progress()
	if err != nil {
		return err
	}

	fmt.Printf("%d of %d tasks completed\n", p.Completed, p.Total)
	fmt.Printf("%s %.0f%%\n", cli.ProgressBar(p, 20), p.Percentage)
	return nil
}
