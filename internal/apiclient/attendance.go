package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
)

type AttendanceService struct {
	client *Client
}

// List fetches attendance; empty filter fields are omitted from the query.
func (s *AttendanceService) List(ctx context.Context, filter attendance.FilterQuery) ([]*attendance.Record, error) {
	q := url.Values{}
	for key, value := range map[string]string{
		"employee_id": filter.EmployeeID,
		"status":      filter.Status,
		"from":        filter.From,
		"to":          filter.To,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}
	path := "/attendance"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []*attendance.Record
	if err := s.client.do(ctx, http.MethodGet, path, nil, &out, MsgLoadAttendance); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string) ([]*attendance.Record, error) {
	var out []*attendance.Record
	if err := s.client.do(ctx, http.MethodGet, "/attendance/employee/"+escape(employeeID), nil, &out, MsgLoadAttendance); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AttendanceService) Mark(ctx context.Context, dto attendance.MarkAttendanceDTO) (*attendance.Record, error) {
	var out attendance.Record
	if err := s.client.do(ctx, http.MethodPost, "/attendance", dto, &out, MsgMarkAttendance); err != nil {
		return nil, err
	}
	return &out, nil
}
