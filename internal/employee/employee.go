package employee

import (
	"strings"
	"time"

	employeeDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/employee"
)

type Employee struct {
	ID         int64     `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEmployee builds an employee from a request, trimming surrounding
// whitespace. Emails are compared case-insensitively so they are stored
// lowercased.
func NewEmployee(dto CreateEmployeeDTO) *Employee {
	return &Employee{
		EmployeeID: strings.TrimSpace(dto.EmployeeID),
		FullName:   strings.TrimSpace(dto.FullName),
		Email:      strings.ToLower(strings.TrimSpace(dto.Email)),
		Department: strings.TrimSpace(dto.Department),
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
