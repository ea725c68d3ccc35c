package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	errors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
	attendanceDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/attendance"
	"github.com/Jaychaware/hrms-lite/internal/core/events"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/pkg/logger"
)

type RepositoryAPI interface {
	Create(ctx context.Context, record *attendanceDatamodel.Attendance) error
	GetAll(ctx context.Context, filter Filter) ([]*attendanceDatamodel.Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendanceDatamodel.Attendance, error)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}

// EmployeeLookup resolves employee references.
type EmployeeLookup interface {
	Exists(ctx context.Context, employeeID string) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeLookup
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeLookup, publisher events.Publisher, lg *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		logger:    lg,
	}
}

// Mark records attendance. Checks run in a fixed order: status, employee,
// date format, then the one-per-day rule. Missing fields fail the check
// they belong to, so an empty employee id is a 404 and an empty date an
// invalid date.
func (s *Service) Mark(ctx context.Context, dto MarkAttendanceDTO) (*Record, error) {
	dto.Normalize()

	if dto.Status != StatusPresent && dto.Status != StatusAbsent {
		return nil, errors.ErrInvalidStatus
	}

	if err := s.requireEmployee(ctx, dto.EmployeeID); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(dto.Date)
	if err != nil {
		return nil, errors.ErrInvalidDate
	}

	existing, err := s.repo.GetByEmployeeAndDate(ctx, dto.EmployeeID, date)
	if err != nil {
		s.logger.Error("failed to check existing attendance", "error", err, "employee_id", dto.EmployeeID)
		return nil, errors.NewInternalError("failed to mark attendance", err)
	}
	if existing != nil {
		return nil, errors.ErrAttendanceExists
	}

	data := ToDataModel(&Record{EmployeeID: dto.EmployeeID, Status: dto.Status}, date)
	if err := s.repo.Create(ctx, data); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, errors.ErrAttendanceExists
		}
		s.logger.Error("failed to mark attendance", "error", err, "employee_id", dto.EmployeeID)
		return nil, errors.NewInternalError("failed to mark attendance", err)
	}

	record := FromDataModel(data)
	logger.Scoped(ctx, s.logger).Info("attendance marked",
		"employee_id", record.EmployeeID,
		"date", record.Date,
		"status", record.Status)

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewAttendanceMarkedEvent(record.EmployeeID, record.Date, record.Status))
	}

	return record, nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]*Record, error) {
	data, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list attendance", "error", err)
		return nil, errors.NewInternalError("failed to list attendance", err)
	}
	return FromDataModelSlice(data), nil
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]*Record, error) {
	employeeID = strings.TrimSpace(employeeID)
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.List(ctx, Filter{EmployeeID: employeeID})
}

// PurgeEmployee deletes every record of an employee and returns how many
// were removed.
func (s *Service) PurgeEmployee(ctx context.Context, employeeID string) (int64, error) {
	n, err := s.repo.DeleteByEmployee(ctx, employeeID)
	if err != nil {
		return 0, fmt.Errorf("purge attendance for %s: %w", employeeID, err)
	}
	logger.Scoped(ctx, s.logger).Info("attendance purged", "employee_id", employeeID, "records", n)
	return n, nil
}

func (s *Service) HandleEmployeeDeleted(ctx context.Context, event events.Event) error {
	deleted, ok := event.(*events.EmployeeDeletedEvent)
	if !ok {
		s.logger.Error("invalid event type for employee deleted handler", "event_type", event.EventType())
		return fmt.Errorf("expected EmployeeDeletedEvent, got %T", event)
	}
	_, err := s.PurgeEmployee(ctx, deleted.EmployeeID)
	return err
}

func (s *Service) RegisterEventHandlers(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeEmployeeDeleted, s.HandleEmployeeDeleted)
}

func (s *Service) requireEmployee(ctx context.Context, employeeID string) error {
	ok, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		s.logger.Error("failed to look up employee", "error", err, "employee_id", employeeID)
		return errors.NewInternalError("failed to look up employee", err)
	}
	if !ok {
		return errors.ErrEmployeeNotFound
	}
	return nil
}
