package system

import (
	"fmt"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/constants"
)

// NotifyCmd sends a notification through the tray app. It doubles as a
// check that the tray is reachable.
type NotifyCmd struct {
	Text  string `arg:"" help:"Notification text."`
	Title string `help:"Notification title." default:"tasklit"`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Notifier.Notify(c.Title, c.Text); err != nil {
		return fmt.Errorf("failed to send notification (is %s running?): %w", constants.TrayExecutableName, err)
	}
	fmt.Println("✓ Notification sent")
	return nil
}
