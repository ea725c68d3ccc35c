package employee

import (
	errors "github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
)

// CreateEmployeeDTO is the POST /employees payload.
type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (dto CreateEmployeeDTO) Validate() *errors.AppError {
	return validation.ValidateEmployee(dto.EmployeeID, dto.FullName, dto.Email, dto.Department)
}

type DeleteEmployeeResponse struct {
	Message string `json:"message"`
}
