package apiclient

import (
	"context"
	"net/http"

	"github.com/Jaychaware/hrms-lite/internal/employee"
)

type EmployeesService struct {
	client *Client
}

func (s *EmployeesService) List(ctx context.Context) ([]*employee.Employee, error) {
	var out []*employee.Employee
	if err := s.client.do(ctx, http.MethodGet, "/employees", nil, &out, MsgLoadEmployees); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EmployeesService) Create(ctx context.Context, dto employee.CreateEmployeeDTO) (*employee.Employee, error) {
	var out employee.Employee
	if err := s.client.do(ctx, http.MethodPost, "/employees", dto, &out, MsgAddEmployee); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EmployeesService) Delete(ctx context.Context, employeeID string) error {
	return s.client.do(ctx, http.MethodDelete, "/employees/"+escape(employeeID), nil, nil, MsgDeleteEmployee)
}
