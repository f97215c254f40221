package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/fixtures"
	"github.com/julianstephens/tasklit/internal/utils"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing database before initialization."`
	Seed  bool `help:"Fill an empty store with sample tasks, history and feed posts."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if !ctx.IsFileStore() {
			return errors.New("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Database exists, close it first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			// Some other error occurred while checking the database; surface it to the user
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized tasklit storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Seed {
		loc, err := utils.LoadLocation(ctx.Session.Settings().Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone: %w", err)
		}
		if err := fixtures.Apply(ctx.Store, ctx.Now().In(loc)); err != nil {
			if errors.Is(err, fixtures.ErrNotEmpty) {
				return fmt.Errorf("cannot seed: %w (use --force to start over)", err)
			}
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
		fmt.Println("Seeded sample tasks, history and feed posts.")
	}

	return nil
}
