package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/tasklit/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`     // IANA timezone name or "Local"
	DisplayName          string `json:"display_name"` // shown on feed posts
	Username             string `json:"username"`     // e.g. "@jordansmith"
	AvatarURL            string `json:"avatar_url"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

// DefaultSettings returns the settings written by init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:             constants.DefaultTimezone,
		DisplayName:          constants.DefaultDisplayName,
		Username:             constants.DefaultUsername,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}

// Author returns the feed identity configured in settings.
func (s Settings) Author() Author {
	return Author{
		Name:      s.DisplayName,
		Username:  s.Username,
		AvatarURL: s.AvatarURL,
	}
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingDisplayName:
			settings.DisplayName = value
		case constants.SettingUsername:
			settings.Username = value
		case constants.SettingAvatarURL:
			settings.AvatarURL = value
		case constants.SettingNotificationsEnabled:
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.NotificationsEnabled = enabled
		}
	}

	return settings, nil
}

// SettingsToMap converts settings into the key-value rows stored by the providers.
func SettingsToMap(s Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:             s.Timezone,
		constants.SettingDisplayName:          s.DisplayName,
		constants.SettingUsername:             s.Username,
		constants.SettingAvatarURL:            s.AvatarURL,
		constants.SettingNotificationsEnabled: strconv.FormatBool(s.NotificationsEnabled),
	}
}
