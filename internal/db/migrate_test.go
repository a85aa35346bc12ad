package db_test

import (
	"context"
	"testing"
	"testing/fstest"

	dbfs "github.com/garnizeh/johnlink/db"
	"github.com/garnizeh/johnlink/internal/db"
)

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	versions, err := db.AppliedVersions(ctx, d)
	if err != nil {
		t.Fatalf("AppliedVersions: %v", err)
	}
	if len(versions) != 1 || versions[0] != "0001_init" {
		t.Fatalf("unexpected applied versions: %v", versions)
	}

	for _, table := range []string{"companies", "projects", "activities", "employees", "tags", "activity_tags"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected %s table to exist: %v", table, err)
		}
	}
}

func TestMigrate_ColumnDefaults(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	if _, err := d.Exec(ctx, `INSERT INTO companies (name) VALUES ('Acme')`); err != nil {
		t.Fatalf("insert company: %v", err)
	}
	var color string
	if err := d.QueryRow(ctx, `SELECT color FROM companies WHERE name = 'Acme'`).Scan(&color); err != nil {
		t.Fatalf("select color: %v", err)
	}
	if color != "#3B82F6" {
		t.Fatalf("expected default company color, got %q", color)
	}

	if _, err := d.Exec(ctx, `INSERT INTO activities (title) VALUES ('Call')`); err != nil {
		t.Fatalf("insert activity: %v", err)
	}
	var category, status string
	var minutes int64
	if err := d.QueryRow(ctx, `SELECT category, status, duration_minutes FROM activities WHERE title = 'Call'`).Scan(&category, &status, &minutes); err != nil {
		t.Fatalf("select activity: %v", err)
	}
	if category != "general" || status != "completed" || minutes != 0 {
		t.Fatalf("unexpected activity defaults: %q %q %d", category, status, minutes)
	}

	if _, err := d.Exec(ctx, `INSERT INTO tags (name) VALUES ('x')`); err != nil {
		t.Fatalf("insert tag: %v", err)
	}
	if _, err := d.Exec(ctx, `INSERT INTO tags (name) VALUES ('x')`); err == nil {
		t.Fatalf("expected unique violation for duplicate tag name")
	}
}

func TestMigrate_AppliesInLexicalOrder(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	fsys := fstest.MapFS{
		"migrations/0002_add.sql":  {Data: []byte(`ALTER TABLE things ADD COLUMN note TEXT;`)},
		"migrations/0001_base.sql": {Data: []byte(`CREATE TABLE things (id INTEGER PRIMARY KEY);`)},
		"migrations/README.md":     {Data: []byte(`ignored`)},
	}
	if err := db.Migrate(ctx, d, fsys); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	versions, err := db.AppliedVersions(ctx, d)
	if err != nil {
		t.Fatalf("AppliedVersions: %v", err)
	}
	if len(versions) != 2 || versions[0] != "0001_base" || versions[1] != "0002_add" {
		t.Fatalf("unexpected versions: %v", versions)
	}
}

func TestMigrate_MissingDir(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, fstest.MapFS{}); err == nil {
		t.Fatalf("expected error when migrations dir is missing")
	}
}
