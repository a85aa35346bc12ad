package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/johnlink/pkg/models"
)

func (r *SQLiteRepo) ListProjects(ctx context.Context) ([]models.ProjectDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT p.id, p.name, p.company_id, p.status, p.description, p.created_at,
			c.name AS company_name, c.color AS company_color
		FROM projects p
		LEFT JOIN companies c ON p.company_id = c.id
		ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ProjectDetail
	for rows.Next() {
		var p models.ProjectDetail
		if err := rows.Scan(&p.ID, &p.Name, &p.CompanyID, &p.Status, &p.Description, &p.CreatedAt, &p.CompanyName, &p.CompanyColor); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("project is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO projects (name, company_id, description, status) VALUES (?, ?, ?, ?)`, p.Name, p.CompanyID, p.Description, p.Status)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) UpdateProject(ctx context.Context, p *models.Project) error {
	if p == nil {
		return fmt.Errorf("project is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE projects SET name = ?, company_id = ?, description = ?, status = ? WHERE id = ?`, p.Name, p.CompanyID, p.Description, p.Status, p.ID)
	return err
}

func (r *SQLiteRepo) DeleteProject(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	return err
}
