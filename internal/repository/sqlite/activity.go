package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/garnizeh/johnlink/pkg/models"
)

const activityColumns = `a.id, a.title, a.description, a.company_id, a.project_id, a.category,
	a.duration_minutes, a.date, a.start_time, a.end_time, a.status, a.created_at`

func activityDest(a *models.Activity) []any {
	return []any{&a.ID, &a.Title, &a.Description, &a.CompanyID, &a.ProjectID, &a.Category,
		&a.DurationMinutes, &a.Date, &a.StartTime, &a.EndTime, &a.Status, &a.CreatedAt}
}

// ListActivities returns activities newest first, joined with their company and
// project. Filters are AND-combined.
func (r *SQLiteRepo) ListActivities(ctx context.Context, f models.ActivityFilter) ([]models.ActivityDetail, error) {
	var q strings.Builder
	q.WriteString(`SELECT ` + activityColumns + `,
			c.name AS company_name, c.color AS company_color, p.name AS project_name
		FROM activities a
		LEFT JOIN companies c ON a.company_id = c.id
		LEFT JOIN projects p ON a.project_id = p.id
		WHERE 1=1`)

	var args []any
	if f.Date != "" {
		q.WriteString(` AND a.date = ?`)
		args = append(args, f.Date)
	}
	if f.CompanyID != "" {
		q.WriteString(` AND a.company_id = ?`)
		args = append(args, f.CompanyID)
	}
	if f.ProjectID != "" {
		q.WriteString(` AND a.project_id = ?`)
		args = append(args, f.ProjectID)
	}

	q.WriteString(` ORDER BY a.date DESC, a.created_at DESC, a.id DESC`)

	if f.Limit != nil {
		q.WriteString(` LIMIT ?`)
		args = append(args, *f.Limit)
	}

	rows, err := r.conn.QueryRows(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ActivityDetail
	for rows.Next() {
		var a models.ActivityDetail
		dest := append(activityDest(&a.Activity), &a.CompanyName, &a.CompanyColor, &a.ProjectName)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CreateActivity(ctx context.Context, a *models.Activity) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("activity is nil")
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO activities (title, description, company_id, project_id, category, duration_minutes, date, start_time, end_time, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Description, a.CompanyID, a.ProjectID, a.Category, a.DurationMinutes, a.Date, a.StartTime, a.EndTime, a.Status)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// UpdateActivity rewrites every column of the row; nil fields become NULL.
func (r *SQLiteRepo) UpdateActivity(ctx context.Context, a *models.Activity) error {
	if a == nil {
		return fmt.Errorf("activity is nil")
	}

	_, err := r.conn.Exec(ctx, `
		UPDATE activities SET title = ?, description = ?, company_id = ?, project_id = ?, category = ?,
			duration_minutes = ?, date = ?, start_time = ?, end_time = ?, status = ?
		WHERE id = ?`,
		a.Title, a.Description, a.CompanyID, a.ProjectID, a.Category, a.DurationMinutes, a.Date, a.StartTime, a.EndTime, a.Status, a.ID)
	return err
}

func (r *SQLiteRepo) DeleteActivity(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM activities WHERE id = ?`, id)
	return err
}
