package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/johnlink/pkg/models"
)

func (r *SQLiteRepo) ListEmployees(ctx context.Context) ([]models.EmployeeDetail, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT e.id, e.name, e.email, e.role, e.company_id, e.created_at, c.name AS company_name
		FROM employees e
		LEFT JOIN companies c ON e.company_id = c.id
		ORDER BY e.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.EmployeeDetail
	for rows.Next() {
		var e models.EmployeeDetail
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Role, &e.CompanyID, &e.CreatedAt, &e.CompanyName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CreateEmployee(ctx context.Context, e *models.Employee) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("employee is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO employees (name, email, role, company_id) VALUES (?, ?, ?, ?)`, e.Name, e.Email, e.Role, e.CompanyID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM employees WHERE id = ?`, id)
	return err
}
