package repository

import (
	"context"

	"github.com/garnizeh/johnlink/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
// Writes are single statements with no validation: whatever the store accepts
// is stored.

type CompanyRepo interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CreateCompany(ctx context.Context, c *models.Company) (int64, error)
	UpdateCompany(ctx context.Context, c *models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
}

type ProjectRepo interface {
	ListProjects(ctx context.Context) ([]models.ProjectDetail, error)
	CreateProject(ctx context.Context, p *models.Project) (int64, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id int64) error
}

type ActivityRepo interface {
	ListActivities(ctx context.Context, f models.ActivityFilter) ([]models.ActivityDetail, error)
	CreateActivity(ctx context.Context, a *models.Activity) (int64, error)
	UpdateActivity(ctx context.Context, a *models.Activity) error
	DeleteActivity(ctx context.Context, id int64) error
}

type EmployeeRepo interface {
	ListEmployees(ctx context.Context) ([]models.EmployeeDetail, error)
	CreateEmployee(ctx context.Context, e *models.Employee) (int64, error)
	DeleteEmployee(ctx context.Context, id int64) error
}

// StatsRepo exposes the read-only aggregates behind the stats snapshot. Dates
// are YYYY-MM-DD strings compared lexically against activities.date.
type StatsRepo interface {
	TotalsOn(ctx context.Context, date string) (models.Totals, error)
	TotalsSince(ctx context.Context, date string) (models.Totals, error)
	TotalsByCompanySince(ctx context.Context, date string) ([]models.CompanyTotals, error)
	TotalsByCategorySince(ctx context.Context, date string) ([]models.CategoryTotals, error)
	RecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error)
	CountCompanies(ctx context.Context) (int64, error)
	CountProjectsWithStatus(ctx context.Context, status string) (int64, error)
	CountEmployees(ctx context.Context) (int64, error)
}

// Repository groups every contract so callers can hand a single value around.
type Repository struct {
	Company  CompanyRepo
	Project  ProjectRepo
	Activity ActivityRepo
	Employee EmployeeRepo
	Stats    StatsRepo
}
