package calendar

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/tasklit/internal/cli"
	"github.com/julianstephens/tasklit/internal/storage/sqlite"
)

func TestCalendarCmd_Validate(t *testing.T) {
	tests := []struct {
		month   string
		wantErr bool
	}{
		{"", false},
		{"2025-01", false},
		{"2025-13", true},
		{"January", true},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			err := (&CalendarCmd{Month: tt.month}).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.month, err, tt.wantErr)
			}
		})
	}
}

func TestCalendarCmd_Run(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	ctx := cli.NewContext(store)
	for _, month := range []string{"", "2025-01"} {
		if err := (&CalendarCmd{Month: month}).Run(ctx); err != nil {
			t.Errorf("calendar %q failed: %v", month, err)
		}
	}
}
