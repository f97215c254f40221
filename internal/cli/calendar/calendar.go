package calendar

import (
	"fmt"

	calendarsvc "github.com/julianstephens/tasklit/internal/calendar"
	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/tui/components/heatmap"
	"github.com/julianstephens/tasklit/internal/utils"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

func (c *CalendarCmd) Validate() error {
	if c.Month == "" {
		return nil
	}
	_, _, err := utils.ParseMonth(c.Month)
	return err
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Session.Today()
	if err != nil {
		return err
	}

	monthStr := c.Month
	if monthStr == "" {
		monthStr = today[:7]
	}
	year, month, err := utils.ParseMonth(monthStr)
	if err != nil {
		return err
	}

	m, err := calendarsvc.Load(ctx.Store, year, month, today)
	if err != nil {
		return err
	}

	fmt.Println(heatmap.Render(m))
	return nil
}
