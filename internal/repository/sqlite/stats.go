package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/johnlink/pkg/models"
)

// TotalsOn counts the activities dated exactly date and sums their minutes.
func (r *SQLiteRepo) TotalsOn(ctx context.Context, date string) (models.Totals, error) {
	var t models.Totals
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*), SUM(duration_minutes) FROM activities WHERE date = ?`, date)
	if err := row.Scan(&t.Count, &t.Minutes); err != nil {
		return t, fmt.Errorf("totals on %s: %w", date, err)
	}
	return t, nil
}

// TotalsSince counts the activities dated on or after date. There is no upper
// bound, so future-dated rows are included.
func (r *SQLiteRepo) TotalsSince(ctx context.Context, date string) (models.Totals, error) {
	var t models.Totals
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*), SUM(duration_minutes) FROM activities WHERE date >= ?`, date)
	if err := row.Scan(&t.Count, &t.Minutes); err != nil {
		return t, fmt.Errorf("totals since %s: %w", date, err)
	}
	return t, nil
}

// TotalsByCompanySince returns one row per company, including companies with
// no activity on or after date (count 0, minutes nil).
func (r *SQLiteRepo) TotalsByCompanySince(ctx context.Context, date string) ([]models.CompanyTotals, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT c.name, c.color, COUNT(a.id), SUM(a.duration_minutes)
		FROM companies c
		LEFT JOIN activities a ON c.id = a.company_id AND a.date >= ?
		GROUP BY c.id
		ORDER BY c.id`, date)
	if err != nil {
		return nil, fmt.Errorf("totals by company: %w", err)
	}
	defer rows.Close()

	var out []models.CompanyTotals
	for rows.Next() {
		var ct models.CompanyTotals
		if err := rows.Scan(&ct.Name, &ct.Color, &ct.Count, &ct.Minutes); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}

	return out, rows.Err()
}

// TotalsByCategorySince groups the activities dated on or after date by
// category. Categories without such activities do not appear.
func (r *SQLiteRepo) TotalsByCategorySince(ctx context.Context, date string) ([]models.CategoryTotals, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT category, COUNT(*), SUM(duration_minutes)
		FROM activities
		WHERE date >= ?
		GROUP BY category
		ORDER BY category`, date)
	if err != nil {
		return nil, fmt.Errorf("totals by category: %w", err)
	}
	defer rows.Close()

	var out []models.CategoryTotals
	for rows.Next() {
		var ct models.CategoryTotals
		if err := rows.Scan(&ct.Category, &ct.Count, &ct.Minutes); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) RecentActivities(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT `+activityColumns+`, c.name AS company_name, c.color AS company_color
		FROM activities a
		LEFT JOIN companies c ON a.company_id = c.id
		ORDER BY a.date DESC, a.created_at DESC, a.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	defer rows.Close()

	var out []models.RecentActivity
	for rows.Next() {
		var a models.RecentActivity
		dest := append(activityDest(&a.Activity), &a.CompanyName, &a.CompanyColor)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountCompanies(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM companies`)
}

// CountProjectsWithStatus matches status exactly; SQLite's = on TEXT is
// case-sensitive under the default BINARY collation.
func (r *SQLiteRepo) CountProjectsWithStatus(ctx context.Context, status string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM projects WHERE status = ?`, status)
}

func (r *SQLiteRepo) CountEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM employees`)
}

func (r *SQLiteRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var cnt int64
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
