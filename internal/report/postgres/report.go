package postgres

import (
	"context"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/report"
	"github.com/jmoiron/sqlx"
)

const totalsQuery = `
SELECT
  (SELECT COUNT(*) FROM employees) AS employees,
  (SELECT COUNT(*) FROM attendance) AS records,
  (SELECT COUNT(*) FROM attendance WHERE status = ?) AS present`

const employeeCountsQuery = `
SELECT
  e.employee_id,
  e.full_name,
  COUNT(a.id) AS total,
  COALESCE(SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END), 0) AS present
FROM employees e
LEFT JOIN attendance a ON a.employee_id = e.employee_id
GROUP BY e.id, e.employee_id, e.full_name
ORDER BY e.id ASC`

type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository queries with sqlx; placeholders are rebound for the
// driver db was opened with.
func NewReportRepository(db *sqlx.DB) report.RepositoryAPI {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Totals(ctx context.Context) (report.Totals, error) {
	var t report.Totals
	err := r.db.GetContext(ctx, &t, r.db.Rebind(totalsQuery), attendance.StatusPresent)
	return t, err
}

func (r *ReportRepository) EmployeeCounts(ctx context.Context) ([]report.EmployeeCount, error) {
	counts := make([]report.EmployeeCount, 0)
	err := r.db.SelectContext(ctx, &counts, r.db.Rebind(employeeCountsQuery), attendance.StatusPresent)
	return counts, err
}
