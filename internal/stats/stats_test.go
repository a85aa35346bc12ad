package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/johnlink/internal/stats"
	"github.com/garnizeh/johnlink/pkg/models"
	"github.com/garnizeh/johnlink/pkg/repository/mock"
)

func fixedClock(t time.Time) stats.Clock {
	return func() time.Time { return t }
}

func TestWindowsAt(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want stats.Windows
	}{
		{
			name: "MidMonth",
			now:  time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			want: stats.Windows{Today: "2024-01-31", WeekAgo: "2024-01-24", MonthAgo: "2024-01-01"},
		},
		{
			name: "LeapFebruary",
			now:  time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			want: stats.Windows{Today: "2024-03-15", WeekAgo: "2024-03-08", MonthAgo: "2024-02-14"},
		},
		{
			name: "YearBoundary",
			now:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			want: stats.Windows{Today: "2024-01-03", WeekAgo: "2023-12-27", MonthAgo: "2023-12-04"},
		},
		{
			// 01:00 at UTC+2 is still the previous day in UTC
			name: "NonUTCInstant",
			now:  time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("EET", 2*60*60)),
			want: stats.Windows{Today: "2023-12-31", WeekAgo: "2023-12-24", MonthAgo: "2023-12-01"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := stats.WindowsAt(c.now); got != c.want {
				t.Fatalf("WindowsAt(%v) = %+v, want %+v", c.now, got, c.want)
			}
		})
	}
}

func TestSnapshot_QueriesEachWindow(t *testing.T) {
	repo := mock.NewStatsRepo()
	thirty := int64(30)
	repo.Today = models.Totals{Count: 1, Minutes: &thirty}
	repo.Since["2024-01-24"] = models.Totals{Count: 2}
	repo.Since["2024-01-01"] = models.Totals{Count: 3}
	repo.Companies, repo.Projects, repo.Employees = 4, 5, 6

	agg := stats.NewAggregator(repo, fixedClock(time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)), nil)
	s, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if repo.OnDate != "2024-01-31" {
		t.Fatalf("today queried with %q", repo.OnDate)
	}
	if len(repo.SinceDates) != 2 || repo.SinceDates[0] != "2024-01-24" || repo.SinceDates[1] != "2024-01-01" {
		t.Fatalf("unexpected since dates: %v", repo.SinceDates)
	}
	if repo.CompanySince != "2024-01-01" || repo.CategorySince != "2024-01-01" {
		t.Fatalf("group-bys should use the month bound, got %q / %q", repo.CompanySince, repo.CategorySince)
	}
	if repo.RecentLimit != stats.RecentLimit {
		t.Fatalf("recent limit = %d", repo.RecentLimit)
	}
	if repo.StatusQueried != "active" {
		t.Fatalf("projects counted by status %q", repo.StatusQueried)
	}

	if s.Today.Count != 1 || s.Today.Minutes == nil || *s.Today.Minutes != 30 {
		t.Fatalf("unexpected today: %+v", s.Today)
	}
	if s.Week.Count != 2 || s.Month.Count != 3 {
		t.Fatalf("unexpected week/month: %+v %+v", s.Week, s.Month)
	}
	if s.TotalCompanies != 4 || s.TotalProjects != 5 || s.TotalEmployees != 6 {
		t.Fatalf("unexpected totals: %d %d %d", s.TotalCompanies, s.TotalProjects, s.TotalEmployees)
	}

	// empty groupings render as [] rather than null
	if s.ByCompany == nil || s.ByCategory == nil || s.RecentActivities == nil {
		t.Fatalf("expected non-nil empty slices: %+v", s)
	}
}

func TestSnapshot_RecomputesOnEveryCall(t *testing.T) {
	repo := mock.NewStatsRepo()
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	agg := stats.NewAggregator(repo, func() time.Time { return now }, nil)

	if _, err := agg.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	now = now.Add(24 * time.Hour)
	repo.Companies = 9
	s, err := agg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if repo.OnDate != "2024-02-01" {
		t.Fatalf("expected the clock to be re-read, got %q", repo.OnDate)
	}
	if s.TotalCompanies != 9 {
		t.Fatalf("expected fresh counts, got %d", s.TotalCompanies)
	}
}

func TestSnapshot_StoreError(t *testing.T) {
	repo := mock.NewStatsRepo()
	repo.Err = errors.New("disk gone")

	agg := stats.NewAggregator(repo, nil, nil)
	if _, err := agg.Snapshot(context.Background()); !errors.Is(err, repo.Err) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
