package console

import (
	"context"
	"errors"
	"io"

	"github.com/Jaychaware/hrms-lite/internal/apiclient"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/report"
)

// ReportedError is an error whose message was already shown to the user.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }
func (e *ReportedError) Unwrap() error { return e.Err }

func IsReported(err error) bool {
	var r *ReportedError
	return errors.As(err, &r)
}

// Console runs one user action against the API and prints the outcome.
type Console struct {
	client *apiclient.Client
	print  *Printer
	in     io.Reader
	out    io.Writer
}

func New(client *apiclient.Client, in io.Reader, out io.Writer) *Console {
	return &Console{
		client: client,
		print:  NewPrinter(out),
		in:     in,
		out:    out,
	}
}

func (c *Console) fail(err error) error {
	c.print.Error(err.Error())
	return &ReportedError{Err: err}
}

func (c *Console) invalid(message string) error {
	return c.fail(errors.New(message))
}

func (c *Console) Dashboard(ctx context.Context) error {
	snap, err := c.client.Snapshot(ctx)
	if err != nil {
		return c.fail(err)
	}
	c.print.Dashboard(report.ComputeDashboard(snap.Employees, snap.Attendance))
	return nil
}

func (c *Console) ListEmployees(ctx context.Context) error {
	employees, err := c.client.Employees.List(ctx)
	if err != nil {
		return c.fail(err)
	}
	c.print.Employees(employees)
	return nil
}

func (c *Console) AddEmployee(ctx context.Context, form EmployeeForm) error {
	if msg := ValidateEmployeeForm(form); msg != "" {
		return c.invalid(msg)
	}
	if _, err := c.client.Employees.Create(ctx, form.DTO()); err != nil {
		return c.fail(err)
	}
	c.print.Success("Employee added!")
	return c.ListEmployees(ctx)
}

// DeleteEmployee asks for confirmation unless assumeYes; a declined prompt
// is not an error.
func (c *Console) DeleteEmployee(ctx context.Context, employeeID string, assumeYes bool) error {
	if !assumeYes && !Confirm(c.in, c.out, DeletePrompt) {
		return nil
	}
	if err := c.client.Employees.Delete(ctx, employeeID); err != nil {
		return c.fail(err)
	}
	c.print.Success("Employee deleted!")
	return c.ListEmployees(ctx)
}

// ListAttendance fetches records with the server-side filter, then narrows
// them to one employee when employeeID is set.
func (c *Console) ListAttendance(ctx context.Context, employeeID string, filter attendance.FilterQuery) error {
	records, err := c.client.Attendance.List(ctx, filter)
	if err != nil {
		return c.fail(err)
	}
	c.print.Attendance(report.FilterRecords(records, employeeID))
	return nil
}

func (c *Console) MarkAttendance(ctx context.Context, form AttendanceForm) error {
	if msg := ValidateAttendanceForm(&form); msg != "" {
		return c.invalid(msg)
	}
	if _, err := c.client.Attendance.Mark(ctx, form.DTO()); err != nil {
		return c.fail(err)
	}
	c.print.Success("Marked!")
	return c.ListAttendance(ctx, "", attendance.FilterQuery{})
}

func (c *Console) Summary(ctx context.Context) error {
	snap, err := c.client.Snapshot(ctx)
	if err != nil {
		return c.fail(err)
	}
	c.print.Summary(report.ComputeSummary(snap.Employees, snap.Attendance))
	return nil
}

// Export writes the dashboard and summary views to w as an xlsx workbook.
func (c *Console) Export(ctx context.Context, w io.Writer) error {
	snap, err := c.client.Snapshot(ctx)
	if err != nil {
		return c.fail(err)
	}
	d := report.ComputeDashboard(snap.Employees, snap.Attendance)
	rows := report.ComputeSummary(snap.Employees, snap.Attendance)
	if err := report.WriteWorkbook(w, d, rows); err != nil {
		return c.fail(err)
	}
	return nil
}
