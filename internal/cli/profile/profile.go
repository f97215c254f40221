package profile

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/insights"
	profileview "github.com/julianstephens/tasklit/internal/tui/components/profile"
	"github.com/julianstephens/tasklit/internal/utils"
)

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Session.Today()
	if err != nil {
		return err
	}

	settings := ctx.Session.Settings()
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	summary, err := insights.Load(ctx.Store, settings.Username, today, loc)
	if err != nil {
		return err
	}

	fmt.Println(profileview.Render(settings, summary))
	return nil
}
