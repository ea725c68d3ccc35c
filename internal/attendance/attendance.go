package attendance

import (
	"time"

	attendanceDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/attendance"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

var Statuses = []string{StatusPresent, StatusAbsent}

// Record is one employee's attendance for one calendar day.
type Record struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *Record) IsPresent() bool {
	return r.Status == StatusPresent
}

func ToDataModel(r *Record, date time.Time) *attendanceDatamodel.Attendance {
	return &attendanceDatamodel.Attendance{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       date,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
	}
}

func FromDataModel(a *attendanceDatamodel.Attendance) *Record {
	return &Record{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.UTC().Format(validation.DateLayout),
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

func FromDataModelSlice(records []*attendanceDatamodel.Attendance) []*Record {
	result := make([]*Record, len(records))
	for i, a := range records {
		result[i] = FromDataModel(a)
	}
	return result
}
