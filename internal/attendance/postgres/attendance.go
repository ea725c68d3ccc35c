package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	attendanceDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/attendance"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, record *attendanceDatamodel.Attendance) error {
	return database.Conn(ctx, r.db).Create(record).Error
}

// GetAll returns matching records, newest day first.
func (r *AttendanceRepository) GetAll(ctx context.Context, filter attendance.Filter) ([]*attendanceDatamodel.Attendance, error) {
	q := database.Conn(ctx, r.db).Model(&attendanceDatamodel.Attendance{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}

	records := make([]*attendanceDatamodel.Attendance, 0)
	err := q.Order("date DESC").Order("id DESC").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendanceDatamodel.Attendance, error) {
	var record attendanceDatamodel.Attendance
	err := database.Conn(ctx, r.db).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := database.Conn(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&attendanceDatamodel.Attendance{})
	return res.RowsAffected, res.Error
}
