package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	dbfs "github.com/garnizeh/johnlink/db"
	"github.com/garnizeh/johnlink/internal/config"
	"github.com/garnizeh/johnlink/internal/db"
	"github.com/garnizeh/johnlink/internal/repository/sqlite"
	"github.com/garnizeh/johnlink/internal/stats"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "johnlinkctl",
	Short: "Administration tool for the JohnLink database",
	Long:  `johnlinkctl migrates, backs up, restores and summarizes the JohnLink SQLite database.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		database, err := open(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		versions, err := db.AppliedVersions(ctx, database)
		if err != nil {
			return fmt.Errorf("read migration status: %w", err)
		}

		fmt.Printf("Database: %s\n", cfg.DatabasePath)
		for _, v := range versions {
			fmt.Printf("  applied %s\n", v)
		}
		fmt.Println("Migrations up to date.")
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup [file]",
	Short: "Write a consistent copy of the database (default <database>.bak)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()

		dst := cfg.DatabasePath + ".bak"
		if len(args) > 0 {
			dst = args[0]
		}

		database, err := open(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.Backup(ctx, database, dst); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		fmt.Printf("Database backup written to %s\n", dst)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [file]",
	Short: "Replace the database with a backup (default <database>.bak)",
	Long: `Replace the database file with a backup copy.

Stop the server before restoring; an open connection would keep using the old file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		src := cfg.DatabasePath + ".bak"
		if len(args) > 0 {
			src = args[0]
		}

		if err := db.Restore(src, cfg.DatabasePath); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		fmt.Printf("Database restored from %s\n", src)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()

		var clock stats.Clock
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			t, err := time.Parse(stats.DateLayout, at)
			if err != nil {
				return fmt.Errorf("invalid --at value %q (expected YYYY-MM-DD)", at)
			}
			clock = func() time.Time { return t }
		}

		database, err := open(ctx, cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := sqlite.New(database, database.Logger())
		snap, err := stats.NewAggregator(repo, clock, database.Logger()).Snapshot(ctx)
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode stats: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config YAML file")

	statsCmd.Flags().String("at", "", "Compute as of this date (YYYY-MM-DD, UTC)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func open(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	database, err := db.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return database, nil
}
