package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/logger"
	"github.com/julianstephens/tasklit/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone used to decide what \"today\" is (or Local)."`
	DisplayName          *string `help:"Name shown on your feed posts."`
	Username             *string `help:"Handle shown on your feed posts, e.g. @jordansmith."`
	AvatarURL            *string `help:"Avatar image URL." name:"avatar-url"`
	NotificationsEnabled *bool   `help:"Enable or disable celebration notifications."`
}

func (c *SettingsCmd) Validate() error {
	if c.Timezone != nil && !utils.ValidateTimezone(*c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", *c.Timezone)
	}
	if c.DisplayName != nil && strings.TrimSpace(*c.DisplayName) == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	if c.Username != nil && strings.TrimSpace(*c.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:              %s\n", settings.Timezone)
		fmt.Printf("  Display Name:          %s\n", settings.DisplayName)
		fmt.Printf("  Username:              %s\n", settings.Username)
		fmt.Printf("  Avatar URL:            %s\n", settings.AvatarURL)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Println("\nStorage:")
		fmt.Printf("  Database:              %s\n", ctx.Store.GetConfigPath())
		if path := logger.Path(); path != "" {
			fmt.Printf("  Log File:              %s\n", path)
		}
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DisplayName != nil {
		settings.DisplayName = strings.TrimSpace(*c.DisplayName)
		updated = true
	}
	if c.Username != nil {
		username := strings.TrimSpace(*c.Username)
		if !strings.HasPrefix(username, "@") {
			username = "@" + username
		}
		settings.Username = username
		updated = true
	}
	if c.AvatarURL != nil {
		settings.AvatarURL = strings.TrimSpace(*c.AvatarURL)
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
