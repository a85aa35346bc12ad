package db_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	dbfs "github.com/garnizeh/johnlink/db"
	"github.com/garnizeh/johnlink/internal/config"
	"github.com/garnizeh/johnlink/internal/db"
)

// TestMigrateOnStart_FileDatabase runs the same sequence the server runs at start
// against a file-backed database inside a temporary directory, twice, to check the
// schema survives a restart.
func TestMigrateOnStart_FileDatabase(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "johnlink.db")

	cfgY := "addr: \":0\"\n" +
		"database_path: '" + dbPath + "'\n" +
		"migrate_on_start: true\n"

	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgY), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	for run := range 2 {
		dbCtx, dbCancel := context.WithTimeout(ctx, cfg.APITimeout)

		d, err := db.New(dbCtx, cfg.DatabasePath, nil)
		if err != nil {
			dbCancel()
			t.Fatalf("run %d: open db: %v", run, err)
		}

		if err := db.Migrate(dbCtx, d, dbfs.Migrations); err != nil {
			d.Close()
			dbCancel()
			t.Fatalf("run %d: migrate failed: %v", run, err)
		}

		if run == 0 {
			if _, err := d.Exec(ctx, `INSERT INTO companies (name) VALUES ('Acme')`); err != nil {
				d.Close()
				dbCancel()
				t.Fatalf("insert company: %v", err)
			}
		}

		var count int
		if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM companies`).Scan(&count); err != nil {
			d.Close()
			dbCancel()
			t.Fatalf("run %d: count companies: %v", run, err)
		}
		if count != 1 {
			d.Close()
			dbCancel()
			t.Fatalf("run %d: expected 1 company to survive restart, got %d", run, count)
		}

		d.Close()
		dbCancel()
	}
}
