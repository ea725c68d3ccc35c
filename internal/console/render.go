package console

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/core/common/validation"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	"github.com/Jaychaware/hrms-lite/internal/report"
)

const (
	MsgNoEmployees = "No employees found"
	MsgNoRecords   = "No records found"
)

// Printer renders views as aligned text tables.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) table(header string, rows func(w io.Writer)) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func (p *Printer) Employees(employees []*employee.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(p.out, MsgNoEmployees)
		return
	}
	p.table("ID\tFULL NAME\tEMAIL\tDEPARTMENT\tCREATED DATE", func(w io.Writer) {
		for _, e := range employees {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.EmployeeID, e.FullName, e.Email, e.Department, formatDay(e.CreatedAt))
		}
	})
}

func (p *Printer) Attendance(records []*attendance.Record) {
	if len(records) == 0 {
		fmt.Fprintln(p.out, MsgNoRecords)
		return
	}
	p.table("EMPLOYEE ID\tDATE\tSTATUS\tRECORDED DATE", func(w io.Writer) {
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.EmployeeID, r.Date, r.Status, formatDay(r.CreatedAt))
		}
	})
}

func (p *Printer) Summary(rows []report.EmployeeSummary) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, MsgNoEmployees)
		return
	}
	p.table("ID\tNAME\tPRESENT\tABSENT\tTOTAL\tRATE\tSTANDING", func(w io.Writer) {
		for _, r := range rows {
			standing := ""
			if r.Good {
				standing = "good"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
				r.EmployeeID, r.FullName, r.Present, r.Absent, r.Total, FormatRate(r.Rate, r.Total), standing)
		}
	})
}

func (p *Printer) Dashboard(d report.Dashboard) {
	p.table("METRIC\tVALUE", func(w io.Writer) {
		fmt.Fprintf(w, "Total Employees\t%d\n", d.TotalEmployees)
		fmt.Fprintf(w, "Total Records\t%d\n", d.TotalRecords)
		fmt.Fprintf(w, "Present\t%d\n", d.PresentCount)
		fmt.Fprintf(w, "Present Rate\t%s\n", FormatRate(d.PresentRate, d.TotalRecords))
	})
}

func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "✔ %s\n", message)
}

func (p *Printer) Error(message string) {
	fmt.Fprintf(p.out, "✖ %s\n", message)
}

// FormatRate renders a percentage with one decimal, or a bare "0%" when
// there is nothing to rate.
func FormatRate(rate float64, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(validation.DateLayout)
}
