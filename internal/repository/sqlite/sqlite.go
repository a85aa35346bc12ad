package sqlite

import (
	"io"
	"log/slog"

	"github.com/garnizeh/johnlink/internal/db"
	"github.com/garnizeh/johnlink/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.CompanyRepo = (*SQLiteRepo)(nil)
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.ActivityRepo = (*SQLiteRepo)(nil)
var _ repository.EmployeeRepo = (*SQLiteRepo)(nil)
var _ repository.StatsRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// Repository returns r wired into every slot of repository.Repository.
func (r *SQLiteRepo) Repository() *repository.Repository {
	return &repository.Repository{Company: r, Project: r, Activity: r, Employee: r, Stats: r}
}
