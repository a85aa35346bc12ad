// Package stats computes the dashboard snapshot over the activities table:
// rolling day/week/month totals, per-company and per-category breakdowns, a
// short recent feed and a few global counts.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository"
)

const (
	// DateLayout is how activity dates are stored and compared.
	DateLayout = "2006-01-02"

	// RecentLimit is the size of the recent activity feed.
	RecentLimit = 10

	// ActiveStatus is the literal project status counted by TotalProjects.
	ActiveStatus = "active"

	weekSpan  = 7 * 24 * time.Hour
	monthSpan = 30 * 24 * time.Hour
)

// Clock returns the current instant.
type Clock func() time.Time

// Date renders t as a calendar date in UTC.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Windows holds the lower date bounds of the three aggregation windows.
type Windows struct {
	Today    string
	WeekAgo  string
	MonthAgo string
}

// WindowsAt computes the window bounds for instant now. Week and month are
// fixed 7 and 30 day spans subtracted from the instant before truncating to a
// date.
func WindowsAt(now time.Time) Windows {
	return Windows{
		Today:    Date(now),
		WeekAgo:  Date(now.Add(-weekSpan)),
		MonthAgo: Date(now.Add(-monthSpan)),
	}
}

type Aggregator struct {
	repo   repository.StatsRepo
	now    Clock
	logger *slog.Logger
}

// NewAggregator returns an Aggregator reading from repo. A nil clock means
// time.Now; a nil logger means slog.Default().
func NewAggregator(repo repository.StatsRepo, now Clock, logger *slog.Logger) *Aggregator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{repo: repo, now: now, logger: logger}
}

// Snapshot recomputes every aggregate from the store.
func (a *Aggregator) Snapshot(ctx context.Context) (*models.Stats, error) {
	w := WindowsAt(a.now())
	a.logger.Debug("computing stats",
		slog.String("today", w.Today),
		slog.String("week_ago", w.WeekAgo),
		slog.String("month_ago", w.MonthAgo),
	)

	var (
		s   models.Stats
		err error
	)

	if s.Today, err = a.repo.TotalsOn(ctx, w.Today); err != nil {
		return nil, fmt.Errorf("today: %w", err)
	}
	if s.Week, err = a.repo.TotalsSince(ctx, w.WeekAgo); err != nil {
		return nil, fmt.Errorf("week: %w", err)
	}
	if s.Month, err = a.repo.TotalsSince(ctx, w.MonthAgo); err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	if s.ByCompany, err = a.repo.TotalsByCompanySince(ctx, w.MonthAgo); err != nil {
		return nil, fmt.Errorf("by company: %w", err)
	}
	if s.ByCategory, err = a.repo.TotalsByCategorySince(ctx, w.MonthAgo); err != nil {
		return nil, fmt.Errorf("by category: %w", err)
	}
	if s.RecentActivities, err = a.repo.RecentActivities(ctx, RecentLimit); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	if s.TotalCompanies, err = a.repo.CountCompanies(ctx); err != nil {
		return nil, fmt.Errorf("total companies: %w", err)
	}
	if s.TotalProjects, err = a.repo.CountProjectsWithStatus(ctx, ActiveStatus); err != nil {
		return nil, fmt.Errorf("total projects: %w", err)
	}
	if s.TotalEmployees, err = a.repo.CountEmployees(ctx); err != nil {
		return nil, fmt.Errorf("total employees: %w", err)
	}

	if s.ByCompany == nil {
		s.ByCompany = []models.CompanyTotals{}
	}
	if s.ByCategory == nil {
		s.ByCategory = []models.CategoryTotals{}
	}
	if s.RecentActivities == nil {
		s.RecentActivities = []models.RecentActivity{}
	}

	return &s, nil
}
