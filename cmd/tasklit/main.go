package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/cli/backups"
	"github.com/julianstephens/tasklit/internal/cli/calendar"
	"github.com/julianstephens/tasklit/internal/cli/feed"
	"github.com/julianstephens/tasklit/internal/cli/profile"
	"github.com/julianstephens/tasklit/internal/cli/settings"
	"github.com/julianstephens/tasklit/internal/cli/system"
	"github.com/julianstephens/tasklit/internal/cli/tasks"
	"github.com/julianstephens/tasklit/internal/constants"
	tlerrors "github.com/julianstephens/tasklit/internal/errors"
	"github.com/julianstephens/tasklit/internal/keyring"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/storage"
	"github.com/julianstephens/tasklit/internal/storage/postgres"
	"github.com/julianstephens/tasklit/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the environment, .pgpass, or the OS keyring instead." type:"string" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd     `cmd:"" help:"Initialize tasklit storage."`
	Tui      system.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Progress tasks.ProgressCmd  `cmd:"" help:"Show today's progress."`
	Task     struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a task to today's list."`
		List   tasks.TaskListCmd   `cmd:"" help:"List today's tasks." default:"1"`
		Toggle tasks.TaskToggleCmd `cmd:"" help:"Mark a task complete or incomplete."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage today's tasks."`
	Feed struct {
		List feed.FeedListCmd `cmd:"" help:"Show the friends feed." default:"1"`
		Like feed.FeedLikeCmd `cmd:"" help:"Like or unlike a post."`
		Post feed.FeedPostCmd `cmd:"" help:"Share a completed task with a photo."`
	} `cmd:"" help:"Browse and post to the friends feed."`
	Calendar calendar.CalendarCmd `cmd:"" help:"Show the monthly completion heatmap."`
	Profile  profile.ProfileCmd   `cmd:"" help:"Show your profile and task insights."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Show keyring availability and the stored connection."`
	} `cmd:"" help:"Manage the database connection stored in the OS keyring."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

// Commands that open the store themselves or never touch it.
var skipLoad = map[string]bool{
	"init":    true,
	"tui":     true,
	"keyring": true,
	"notify":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily task list with a friends feed and completion calendar"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	store, configDir, err := openStore(CLI.Config)
	if err != nil {
		tlerrors.Fatal(err)
	}

	logCfg := logger.Config{Debug: CLI.Debug, ConfigDir: configDir, Level: os.Getenv(constants.EnvLogLevel)}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	defer logger.Close()
	logger.Debug("Starting tasklit", "command", ctx.Command(), "store", store.GetConfigPath())

	if command := strings.Fields(ctx.Command()); len(command) > 0 && !skipLoad[command[0]] {
		if err := store.Load(); err != nil {
			tlerrors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store)
	if err := ctx.Run(appCtx); err != nil {
		tlerrors.Fatal(err)
	}
}

// openStore picks the backing store. A connection string from the
// environment wins over the keyring, which wins over --config.
func openStore(config string) (storage.Provider, string, error) {
	defaultDir := filepath.Dir(kong.ExpandPath(constants.DefaultConfigPath))

	if connStr := os.Getenv(constants.EnvDBConnection); connStr != "" {
		return postgres.New(connStr), defaultDir, nil
	}

	// The keyring only applies when --config was left at its default
	if config == constants.DefaultConfigPath {
		// A missing entry or an unreachable keyring falls through to SQLite
		if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
			return postgres.New(connStr), defaultDir, nil
		}
	}

	if postgres.IsConnString(config) {
		if postgres.HasEmbeddedCredentials(config) {
			return nil, "", postgres.ErrEmbeddedCredentials
		}
		return postgres.New(config), defaultDir, nil
	}

	path := kong.ExpandPath(config)
	return sqlite.NewStore(path), filepath.Dir(path), nil
}
