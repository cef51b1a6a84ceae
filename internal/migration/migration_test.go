package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var testMigrations = fstest.MapFS{
	"001_create_pets.sql": &fstest.MapFile{
		Data: []byte("CREATE TABLE pets (id TEXT PRIMARY KEY, name TEXT NOT NULL);"),
	},
	"002_add_species.sql": &fstest.MapFile{
		Data: []byte("ALTER TABLE pets ADD COLUMN species TEXT NOT NULL DEFAULT 'cat';"),
	},
}

func TestReadMigrationFiles(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations)

	migs, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles() failed: %v", err)
	}
	if len(migs) != 2 {
		t.Fatalf("ReadMigrationFiles() returned %d migrations, want 2", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 {
		t.Errorf("versions = %d, %d; want 1, 2", migs[0].Version, migs[1].Version)
	}
	if migs[0].Name != "create_pets" {
		t.Errorf("name = %q, want create_pets", migs[0].Name)
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	bad := fstest.MapFS{
		"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	runner := NewRunner(setupTestDB(t), bad)
	if _, err := runner.ReadMigrationFiles(); err == nil {
		t.Error("ReadMigrationFiles() accepted a file without a version prefix")
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations)

	count, err := runner.ApplyMigrations(func(string) {})
	if err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("ApplyMigrations() applied %d, want 2", count)
	}

	// Both migrations should have landed.
	if _, err := db.Exec(`INSERT INTO pets (id, name, species) VALUES ('p1', 'mochi', 'dog')`); err != nil {
		t.Errorf("schema incomplete after migrations: %v", err)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("GetCurrentVersion() = %d, want 2", version)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	runner := NewRunner(setupTestDB(t), testMigrations)

	if _, err := runner.ApplyMigrations(func(string) {}); err != nil {
		t.Fatalf("first ApplyMigrations() failed: %v", err)
	}
	count, err := runner.ApplyMigrations(func(string) {})
	if err != nil {
		t.Fatalf("second ApplyMigrations() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("second ApplyMigrations() applied %d, want 0", count)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, testMigrations)

	if _, err := runner.ApplyMigrations(func(string) {}); err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() on current schema = %v, want nil", err)
	}

	// Behind: pretend only the first migration ran.
	if _, err := db.Exec(`DELETE FROM schema_version WHERE version = 2`); err != nil {
		t.Fatalf("failed to rewind version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() on lagging schema = nil, want error")
	}

	// Ahead: a newer build wrote a version this one does not know.
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (99)`); err != nil {
		t.Fatalf("failed to fast-forward version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() on newer schema = nil, want error")
	}
}
