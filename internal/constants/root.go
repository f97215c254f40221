package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "tasklit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/tasklit/tasklit.db"
	Version            = "v0.1.0"

	// EnvDBConnection overrides the configured store with a PostgreSQL connection string
	EnvDBConnection = "TASKLIT_DB_CONNECTION"
	// EnvLogLevel overrides the log level (debug, info, warn, error)
	EnvLogLevel = "TASKLIT_LOG_LEVEL"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used for calendar month selection (YYYY-MM)
	MonthFormat = "2006-01"

	// DefaultTimeEstimate is applied to tasks created without an estimate
	DefaultTimeEstimate = "30 min"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tasklit-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "tasklit-tray.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.tasklit"
	TrayExecutableName     = "tasklit-tray"
	TraySecretHeader       = "X-Tasklit-Secret"
	NotifyTimeout          = 2 * time.Second

	// Settings keys
	SettingTimezone             = "timezone"
	SettingDisplayName          = "display_name"
	SettingUsername             = "username"
	SettingAvatarURL            = "avatar_url"
	SettingNotificationsEnabled = "notifications_enabled"

	// Settings defaults
	DefaultTimezone             = "Local"
	DefaultDisplayName          = "You"
	DefaultUsername             = "@you"
	DefaultNotificationsEnabled = true

	// Feed defaults
	DefaultFeedLimit = 50
)

// Session States
const (
	StateTasks SessionState = iota
	StateFeed
	StateCalendar
	StateProfile
	StateAddTask
	StateShareTask
	StateConfirmDelete
	StateAlert
)

// MainTabs is the number of top-level TUI tabs; states below it are tabs.
const MainTabs = 4
