package report

import (
	"math"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/employee"
)

// GoodRate is the attendance rate at or above which an employee is in good
// standing.
const GoodRate = 80.0

type Dashboard struct {
	TotalEmployees int64   `json:"total_employees"`
	TotalRecords   int64   `json:"total_records"`
	PresentCount   int64   `json:"present_count"`
	PresentRate    float64 `json:"present_rate"`
}

type EmployeeSummary struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Total      int64   `json:"total"`
	Rate       float64 `json:"rate"`
	Good       bool    `json:"good"`
}

func NewDashboard(employees, records, present int64) Dashboard {
	return Dashboard{
		TotalEmployees: employees,
		TotalRecords:   records,
		PresentCount:   present,
		PresentRate:    Rate(present, records),
	}
}

func NewEmployeeSummary(employeeID, fullName string, total, present int64) EmployeeSummary {
	rate := Rate(present, total)
	return EmployeeSummary{
		EmployeeID: employeeID,
		FullName:   fullName,
		Present:    present,
		Absent:     total - present,
		Total:      total,
		Rate:       rate,
		Good:       rate >= GoodRate,
	}
}

// Rate is part/total as a percentage rounded to one decimal; 0 when total is 0.
func Rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeDashboard aggregates lists already fetched from the API.
func ComputeDashboard(employees []*employee.Employee, records []*attendance.Record) Dashboard {
	var present int64
	for _, r := range records {
		if r.IsPresent() {
			present++
		}
	}
	return NewDashboard(int64(len(employees)), int64(len(records)), present)
}

// ComputeSummary returns one row per employee, in employee order.
func ComputeSummary(employees []*employee.Employee, records []*attendance.Record) []EmployeeSummary {
	type tally struct{ total, present int64 }
	counts := make(map[string]*tally, len(employees))
	for _, r := range records {
		t, ok := counts[r.EmployeeID]
		if !ok {
			t = &tally{}
			counts[r.EmployeeID] = t
		}
		t.total++
		if r.IsPresent() {
			t.present++
		}
	}

	rows := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		var t tally
		if c, ok := counts[e.EmployeeID]; ok {
			t = *c
		}
		rows = append(rows, NewEmployeeSummary(e.EmployeeID, e.FullName, t.total, t.present))
	}
	return rows
}

// FilterRecords keeps the records of one employee; an empty id keeps all.
func FilterRecords(records []*attendance.Record, employeeID string) []*attendance.Record {
	if employeeID == "" {
		return records
	}
	out := make([]*attendance.Record, 0, len(records))
	for _, r := range records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out
}
