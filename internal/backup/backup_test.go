package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/tasklit/internal/constants"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasklit.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE tasks (id TEXT PRIMARY KEY, title TEXT)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO tasks (id, title) VALUES ('1', 'Morning Run'), ('2', 'Read')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}

	return dbPath
}

func countTasks(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		t.Fatalf("failed to count tasks in %s: %v", path, err)
	}
	return count
}

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want dir %s", backupPath, mgr.GetBackupDir())
	}
	if got := countTasks(t, backupPath); got != 2 {
		t.Errorf("expected 2 rows in backup, got %d", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error when database does not exist")
	}
}

func TestBackupRotation(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	mgr.now = fixedClock()

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backup %d is newer than backup %d", i, i-1)
		}
	}
}

func TestSameSecondBackupsGetCounter(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	stamp := time.Date(2025, 1, 15, 9, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return stamp }

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("expected distinct backup paths")
	}
	if filepath.Base(second) != "tasklit-20250115-090000-1.db" {
		t.Errorf("second backup name = %s", filepath.Base(second))
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != 2 || backups[0].Path != second {
		t.Errorf("ListBackups() = %+v, want counter backup first", backups)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	mgr := NewManager(setupTestDB(t))

	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Fatalf("ListBackups() on missing dir = %v, %v", backups, err)
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "tasklit-garbage.db", "tasklit-20250115-0900.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v; want none", backups, err)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fixedClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO tasks (id, title) VALUES ('3', 'Ship')"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	safety, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := countTasks(t, dbPath); got != 2 {
		t.Errorf("expected 2 rows after restore, got %d", got)
	}
	if safety == "" {
		t.Fatal("expected a safety backup of the replaced database")
	}
	if got := countTasks(t, safety); got != 3 {
		t.Errorf("expected 3 rows in safety backup, got %d", got)
	}
}

func TestRestoreBackupRejectsInvalidFile(t *testing.T) {
	mgr := NewManager(setupTestDB(t))

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("definitely not sqlite, just some text padding it out"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.RestoreBackup(bogus); err == nil {
		t.Error("expected error for invalid backup file")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("expected error for missing backup file")
	}
}

func TestResolvePath(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	mgr.now = fixedClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	got, err := mgr.ResolvePath(filepath.Base(backupPath))
	if err != nil || got != backupPath {
		t.Errorf("ResolvePath(name) = %s, %v; want %s", got, err, backupPath)
	}
	got, err = mgr.ResolvePath(backupPath)
	if err != nil || got != backupPath {
		t.Errorf("ResolvePath(abs) = %s, %v", got, err)
	}
	if _, err := mgr.ResolvePath("tasklit-19990101-000000.db"); err == nil {
		t.Error("expected error for unknown backup")
	}
}
