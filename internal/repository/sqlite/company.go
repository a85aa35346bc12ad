package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/garnizeh/johnlink/pkg/models"
)

func (r *SQLiteRepo) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, description, color, created_at FROM companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CreateCompany(ctx context.Context, c *models.Company) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("company is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO companies (name, description, color) VALUES (?, ?, ?)`, c.Name, c.Description, c.Color)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) UpdateCompany(ctx context.Context, c *models.Company) error {
	if c == nil {
		return fmt.Errorf("company is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE companies SET name = ?, description = ?, color = ? WHERE id = ?`, c.Name, c.Description, c.Color, c.ID)
	return err
}

// DeleteCompany removes the company row only. Projects, activities and employees
// pointing at it keep their company_id.
func (r *SQLiteRepo) DeleteCompany(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		r.logger.Debug("delete matched no company", slog.Int64("id", id))
	}
	return nil
}
