package employee

import (
	"context"
	"log/slog"
	"strings"

	errors "github.com/Jaychaware/hrms-lite/internal"
	employeeDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/employee"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
)

// RepositoryAPI is the employee store. Lookups return nil, nil when nothing
// matches.
type RepositoryAPI interface {
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDatamodel.Employee, error)
	GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	// Transaction runs fn atomically; fn must pass its ctx to repository calls.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	repo      RepositoryAPI
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, publisher events.Publisher, lg *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    lg,
	}
}

func (s *Service) Create(ctx context.Context, dto CreateEmployeeDTO) (*Employee, error) {
	if appErr := dto.Validate(); appErr != nil {
		s.logger.Warn("employee validation failed", "error", appErr.GetDetailedMessage())
		return nil, appErr
	}

	emp := NewEmployee(dto)

	existing, err := s.repo.GetByEmployeeID(ctx, emp.EmployeeID)
	if err != nil {
		s.logger.Error("failed to look up employee id", "error", err, "employee_id", emp.EmployeeID)
		return nil, errors.NewInternalError("failed to create employee", err)
	}
	if existing != nil {
		return nil, errors.ErrEmployeeIDExists
	}

	existing, err = s.repo.GetByEmail(ctx, emp.Email)
	if err != nil {
		s.logger.Error("failed to look up employee email", "error", err, "employee_id", emp.EmployeeID)
		return nil, errors.NewInternalError("failed to create employee", err)
	}
	if existing != nil {
		return nil, errors.ErrEmailExists
	}

	data := ToDataModel(emp)
	if err := s.repo.Create(ctx, data); err != nil {
		if database.IsUniqueViolation(err) {
			// lost a race with a concurrent create; re-check which key collided
			if dup, _ := s.repo.GetByEmployeeID(ctx, emp.EmployeeID); dup != nil {
				return nil, errors.ErrEmployeeIDExists
			}
			return nil, errors.ErrEmailExists
		}
		s.logger.Error("failed to create employee", "error", err, "employee_id", emp.EmployeeID)
		return nil, errors.NewInternalError("failed to create employee", err)
	}

	created := FromDataModel(data)
	logger.Scoped(ctx, s.logger).Info("employee created",
		"employee_id", created.EmployeeID,
		"department", created.Department)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewEmployeeCreatedEvent(created.EmployeeID, created.Department))
	}

	return created, nil
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	data, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, errors.NewInternalError("failed to list employees", err)
	}
	return FromDataModelSlice(data), nil
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	data, err := s.repo.GetByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", employeeID)
		return nil, errors.NewInternalError("failed to get employee", err)
	}
	if data == nil {
		return nil, errors.ErrEmployeeNotFound
	}
	return FromDataModel(data), nil
}

// Exists lets other modules check employee references.
func (s *Service) Exists(ctx context.Context, employeeID string) (bool, error) {
	_, err := s.Get(ctx, employeeID)
	if err == nil {
		return true, nil
	}
	if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeEmployeeNotFound {
		return false, nil
	}
	return false, err
}

// Delete removes the employee and, through employee.deleted subscribers,
// their attendance. Both happen in one transaction: a failing subscriber or
// delete leaves everything in place.
func (s *Service) Delete(ctx context.Context, employeeID string) error {
	emp, err := s.Get(ctx, employeeID)
	if err != nil {
		return err
	}

	err = s.repo.Transaction(ctx, func(ctx context.Context) error {
		if s.publisher != nil {
			if err := s.publisher.PublishSync(ctx, events.NewEmployeeDeletedEvent(emp.EmployeeID)); err != nil {
				return err
			}
		}
		return s.repo.Delete(ctx, emp.EmployeeID)
	})
	if err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", emp.EmployeeID)
		return errors.NewInternalError("failed to delete employee", err)
	}

	logger.Scoped(ctx, s.logger).Info("employee deleted", "employee_id", emp.EmployeeID)
	return nil
}
