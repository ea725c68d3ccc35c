package console

import (
	"strings"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
	"github.com/Jaychaware/hrms-lite/internal/employee"
)

type EmployeeForm struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// ValidateEmployeeForm returns the first problem with the form, or "".
func ValidateEmployeeForm(form EmployeeForm) string {
	switch {
	case strings.TrimSpace(form.EmployeeID) == "":
		return "Employee ID required"
	case strings.TrimSpace(form.FullName) == "":
		return "Full Name required"
	case strings.TrimSpace(form.Email) == "":
		return "Email required"
	case !validation.IsEmail(strings.TrimSpace(form.Email)):
		return "Invalid email"
	case strings.TrimSpace(form.Department) == "":
		return "Department required"
	}
	return ""
}

func (f EmployeeForm) DTO() employee.CreateEmployeeDTO {
	return employee.CreateEmployeeDTO{
		EmployeeID: f.EmployeeID,
		FullName:   f.FullName,
		Email:      f.Email,
		Department: f.Department,
	}
}

type AttendanceForm struct {
	EmployeeID string
	Date       string
	Status     string
}

// ValidateAttendanceForm fills in the default status and returns the first
// problem with the form, or "".
func ValidateAttendanceForm(form *AttendanceForm) string {
	if strings.TrimSpace(form.Status) == "" {
		form.Status = attendance.StatusPresent
	}
	if strings.TrimSpace(form.EmployeeID) == "" || strings.TrimSpace(form.Date) == "" {
		return "All fields required"
	}
	return ""
}

func (f AttendanceForm) DTO() attendance.MarkAttendanceDTO {
	return attendance.MarkAttendanceDTO{
		EmployeeID: f.EmployeeID,
		Date:       f.Date,
		Status:     f.Status,
	}
}
