package db_test

import (
	"context"
	"path/filepath"
	"testing"

	dbpkg "github.com/garnizeh/johnlink/internal/db"
)

func countItems(t *testing.T, path string) int {
	t.Helper()
	ctx := context.Background()
	d, err := dbpkg.New(ctx, path, nil)
	if err != nil {
		t.Fatalf("New(%s): %v", path, err)
	}
	defer d.Close()

	var n int
	if err := d.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestBackupRestore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	live := filepath.Join(dir, "live.db")
	bak := filepath.Join(dir, "live.db.bak")

	d, err := dbpkg.New(ctx, live, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.Exec(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO items (name) VALUES ('a'), ('b')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := dbpkg.Backup(ctx, d, bak); err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if err := dbpkg.Backup(ctx, d, bak); err == nil {
		t.Fatalf("expected error when backup target exists")
	}

	// diverge after the backup
	if _, err := d.Exec(ctx, `INSERT INTO items (name) VALUES ('c')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := countItems(t, live); n != 3 {
		t.Fatalf("expected 3 items before restore, got %d", n)
	}

	if err := dbpkg.Restore(bak, live); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if n := countItems(t, live); n != 2 {
		t.Fatalf("expected 2 items after restore, got %d", n)
	}
}

func TestRestore_MissingBackup(t *testing.T) {
	dir := t.TempDir()
	if err := dbpkg.Restore(filepath.Join(dir, "nope.bak"), filepath.Join(dir, "live.db")); err == nil {
		t.Fatalf("expected error for missing backup")
	}
}
