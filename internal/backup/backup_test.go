package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeStore(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store fixture: %v", err)
	}
	return path
}

func TestCreate_JSONStore(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "mino.json", `{"version":1,"records":{}}`)

	m := NewManager(store)
	dest, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(dest), backupFilePrefix) {
		t.Errorf("backup name = %s", filepath.Base(dest))
	}
	if filepath.Ext(dest) != ".json" {
		t.Errorf("backup extension = %s, want .json", filepath.Ext(dest))
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"records":{}}` {
		t.Errorf("backup content = %s", data)
	}
}

func TestCreate_MissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := m.Create(); err == nil {
		t.Error("Create on missing store succeeded, want error")
	}
}

func TestList_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "mino.json", `{}`)
	m := NewManager(store)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	stamps := []string{"20260301-080000", "20260305-080000", "20260303-080000"}
	for _, stamp := range stamps {
		writeStore(t, m.BackupDir(), backupFilePrefix+stamp+".json", `{}`)
	}
	// Files without the prefix or with a bad stamp are ignored.
	writeStore(t, m.BackupDir(), "stray.json", `{}`)
	writeStore(t, m.BackupDir(), backupFilePrefix+"not-a-stamp.json", `{}`)

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("List returned %d backups, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i-1].Timestamp.Before(backups[i].Timestamp) {
			t.Error("backups not sorted newest first")
		}
	}
}

func TestList_NoBackupDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "mino.json"))
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List = %d backups, want none", len(backups))
	}
}

func TestCreate_RotatesOldBackups(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "mino.json", `{}`)
	m := NewManager(store)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	// Seed one more than the rotation limit; all older than any new backup.
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= MaxBackups; i++ {
		stamp := base.AddDate(0, 0, i).Format("20060102-150405")
		writeStore(t, m.BackupDir(), backupFilePrefix+stamp+".json", `{}`)
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("after rotation %d backups remain, want %d", len(backups), MaxBackups)
	}

	// The two oldest seeds must be the ones that were dropped.
	oldest := backups[len(backups)-1].Timestamp
	if oldest.Before(base.AddDate(0, 0, 2)) {
		t.Errorf("oldest surviving backup is %s, rotation removed the wrong files", oldest)
	}
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "mino.json", `{"current":false}`)
	m := NewManager(store)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	backup := writeStore(t, m.BackupDir(), backupFilePrefix+"20260101-000000.json", `{"current":true}`)

	if err := m.Restore(backup); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	data, err := os.ReadFile(store)
	if err != nil {
		t.Fatalf("failed to read restored store: %v", err)
	}
	if string(data) != `{"current":true}` {
		t.Errorf("restored content = %s", data)
	}

	// The pre-restore state was itself backed up.
	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup before restore, have %d backups", len(backups))
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	dir := t.TempDir()
	store := writeStore(t, dir, "mino.json", `{}`)
	m := NewManager(store)

	if err := m.Restore(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("Restore of missing backup succeeded, want error")
	}
}
