package models

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Columns are pointers so that NULL round-trips as JSON null, and so that a
// missing required value reaches the store as NULL and fails its NOT NULL
// constraint there.

type Company struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	Color       *string `json:"color" db:"color"`
	CreatedAt   *string `json:"created_at" db:"created_at"`
}

type Project struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"name" db:"name"`
	CompanyID   *int64  `json:"company_id" db:"company_id"`
	Status      *string `json:"status" db:"status"`
	Description *string `json:"description" db:"description"`
	CreatedAt   *string `json:"created_at" db:"created_at"`
}

// ProjectDetail is a project joined with its company, if the company still exists.
type ProjectDetail struct {
	Project
	CompanyName  *string `json:"company_name" db:"company_name"`
	CompanyColor *string `json:"company_color" db:"company_color"`
}

type Activity struct {
	ID              int64   `json:"id" db:"id"`
	Title           *string `json:"title" db:"title"`
	Description     *string `json:"description" db:"description"`
	CompanyID       *int64  `json:"company_id" db:"company_id"`
	ProjectID       *int64  `json:"project_id" db:"project_id"`
	Category        *string `json:"category" db:"category"`
	DurationMinutes *int64  `json:"duration_minutes" db:"duration_minutes"`
	Date            *string `json:"date" db:"date"`
	StartTime       *string `json:"start_time" db:"start_time"`
	EndTime         *string `json:"end_time" db:"end_time"`
	Status          *string `json:"status" db:"status"`
	CreatedAt       *string `json:"created_at" db:"created_at"`
}

// RecentActivity is an activity joined with its company.
type RecentActivity struct {
	Activity
	CompanyName  *string `json:"company_name" db:"company_name"`
	CompanyColor *string `json:"company_color" db:"company_color"`
}

// ActivityDetail is an activity joined with its company and project.
type ActivityDetail struct {
	RecentActivity
	ProjectName *string `json:"project_name" db:"project_name"`
}

// ActivityFilter narrows ListActivities. Empty strings mean "no filter"; the
// values are bound as-is.
type ActivityFilter struct {
	Date      string
	CompanyID string
	ProjectID string
	Limit     *int
}

type Employee struct {
	ID        int64   `json:"id" db:"id"`
	Name      *string `json:"name" db:"name"`
	Email     *string `json:"email" db:"email"`
	Role      *string `json:"role" db:"role"`
	CompanyID *int64  `json:"company_id" db:"company_id"`
	CreatedAt *string `json:"created_at" db:"created_at"`
}

type EmployeeDetail struct {
	Employee
	CompanyName *string `json:"company_name" db:"company_name"`
}

// Totals is a count and a minutes sum over a set of activities. Minutes is nil
// when the set is empty.
type Totals struct {
	Count   int64  `json:"count"`
	Minutes *int64 `json:"minutes"`
}

type CompanyTotals struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
	Totals
}

type CategoryTotals struct {
	Category *string `json:"category"`
	Totals
}

// Stats is the snapshot served by /api/stats.
type Stats struct {
	Today            Totals           `json:"today"`
	Week             Totals           `json:"week"`
	Month            Totals           `json:"month"`
	ByCompany        []CompanyTotals  `json:"byCompany"`
	ByCategory       []CategoryTotals `json:"byCategory"`
	RecentActivities []RecentActivity `json:"recentActivities"`
	TotalCompanies   int64            `json:"totalCompanies"`
	TotalProjects    int64            `json:"totalProjects"`
	TotalEmployees   int64            `json:"totalEmployees"`
}
