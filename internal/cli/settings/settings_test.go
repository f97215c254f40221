package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := cli.NewContext(store)

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func ptr[T any](v T) *T { return &v }

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	err := cmd.Run(ctx)
	if err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		Timezone:             ptr("Europe/London"),
		DisplayName:          ptr("  Jordan Smith "),
		Username:             ptr("jordansmith"),
		NotificationsEnabled: ptr(false),
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got.Timezone != "Europe/London" {
		t.Errorf("expected timezone Europe/London, got %q", got.Timezone)
	}
	if got.DisplayName != "Jordan Smith" {
		t.Errorf("expected trimmed display name, got %q", got.DisplayName)
	}
	if got.Username != "@jordansmith" {
		t.Errorf("expected @-prefixed username, got %q", got.Username)
	}
	if got.NotificationsEnabled {
		t.Error("expected notifications to be disabled")
	}
}

func TestSettingsCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SettingsCmd
		wantErr bool
	}{
		{"no flags", SettingsCmd{}, false},
		{"local timezone", SettingsCmd{Timezone: ptr("Local")}, false},
		{"bad timezone", SettingsCmd{Timezone: ptr("Mars/Olympus")}, true},
		{"blank display name", SettingsCmd{DisplayName: ptr("  ")}, true},
		{"blank username", SettingsCmd{Username: ptr("")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
