package mock

import (
	"context"

	"github.com/garnizeh/johnlink/pkg/models"
)

// StatsRepo is a canned repository.StatsRepo that records the arguments it was
// called with.
type StatsRepo struct {
	Today      models.Totals
	Since      map[string]models.Totals
	ByCompany  []models.CompanyTotals
	ByCategory []models.CategoryTotals
	Recent     []models.RecentActivity
	Companies  int64
	Projects   int64
	Employees  int64

	// Err, when set, is returned by every method.
	Err error

	OnDate        string
	SinceDates    []string
	CompanySince  string
	CategorySince string
	RecentLimit   int
	StatusQueried string
}

func NewStatsRepo() *StatsRepo {
	return &StatsRepo{Since: map[string]models.Totals{}}
}

func (m *StatsRepo) TotalsOn(ctx context.Context, date string) (models.Totals, error) {
	m.OnDate = date
	return m.Today, m.Err
}

func (m *StatsRepo) TotalsSince(ctx context.Context, date string) (models.Totals, error) {
	m.SinceDates = append(m.SinceDates, date)
	return m.Since[date], m.Err
}

func (m *StatsRepo) TotalsByCompanySince(ctx context.Context, date string) ([]models.CompanyTotals, error) {
	m.CompanySince = date
	return m.ByCompany, m.Err
}

func (m *StatsRepo) TotalsByCategorySince(ctx context.Context, date string) ([]models.CategoryTotals, error) {
	m.CategorySince = date
	return m.ByCategory, m.Err
}

func (m *StatsRepo) RecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	m.RecentLimit = limit
	return m.Recent, m.Err
}

func (m *StatsRepo) CountCompanies(ctx context.Context) (int64, error) {
	return m.Companies, m.Err
}

func (m *StatsRepo) CountProjectsWithStatus(ctx context.Context, status string) (int64, error) {
	m.StatusQueried = status
	return m.Projects, m.Err
}

func (m *StatsRepo) CountEmployees(ctx context.Context) (int64, error) {
	return m.Employees, m.Err
}
