package report

import (
	"context"
	"log/slog"

	errors "github.com/Jaychaware/hrms-lite/internal"
)

type Totals struct {
	Employees int64 `db:"employees"`
	Records   int64 `db:"records"`
	Present   int64 `db:"present"`
}

type EmployeeCount struct {
	EmployeeID string `db:"employee_id"`
	FullName   string `db:"full_name"`
	Total      int64  `db:"total"`
	Present    int64  `db:"present"`
}

type RepositoryAPI interface {
	Totals(ctx context.Context) (Totals, error)
	EmployeeCounts(ctx context.Context) ([]EmployeeCount, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	t, err := s.repo.Totals(ctx)
	if err != nil {
		s.logger.Error("failed to compute dashboard", "error", err)
		return Dashboard{}, errors.NewInternalError("failed to compute dashboard", err)
	}
	return NewDashboard(t.Employees, t.Records, t.Present), nil
}

func (s *Service) Summary(ctx context.Context) ([]EmployeeSummary, error) {
	counts, err := s.repo.EmployeeCounts(ctx)
	if err != nil {
		s.logger.Error("failed to compute summary", "error", err)
		return nil, errors.NewInternalError("failed to compute summary", err)
	}
	rows := make([]EmployeeSummary, len(counts))
	for i, c := range counts {
		rows[i] = NewEmployeeSummary(c.EmployeeID, c.FullName, c.Total, c.Present)
	}
	return rows, nil
}
