package db

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Backup writes a consistent copy of the open database to dst using
// VACUUM INTO. dst must not exist.
func Backup(ctx context.Context, d *DB, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("backup target %s already exists", dst)
	}
	if _, err := d.Exec(ctx, `VACUUM INTO ?`, dst); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dst, err)
	}
	d.logger.Info("database backup written", slog.String("path", dst))
	return nil
}

// Restore replaces the database file at dst with the contents of src. The
// database at dst must not be open.
func Restore(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer in.Close()

	tmp := dst + ".restore"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("copy backup: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	// stale journal files would be replayed over the restored copy
	for _, suffix := range []string{"-wal", "-shm", "-journal"} {
		os.Remove(dst + suffix)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", dst, err)
	}
	return nil
}
