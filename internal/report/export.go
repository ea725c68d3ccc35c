package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	DashboardSheet = "Dashboard"
	SummarySheet   = "Summary"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var summaryHeader = []interface{}{"Employee ID", "Name", "Present", "Absent", "Total", "Rate (%)", "Standing"}

// WriteWorkbook writes the dashboard and summary views as an xlsx workbook.
func WriteWorkbook(w io.Writer, d Dashboard, rows []EmployeeSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", DashboardSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	cards := [][]interface{}{
		{"Metric", "Value"},
		{"Total Employees", d.TotalEmployees},
		{"Total Records", d.TotalRecords},
		{"Present", d.PresentCount},
		{"Present Rate (%)", d.PresentRate},
	}
	if err := writeRows(f, DashboardSheet, cards); err != nil {
		return err
	}
	if err := f.SetCellStyle(DashboardSheet, "A1", "B1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(DashboardSheet, "A", "A", 20); err != nil {
		return err
	}

	table := make([][]interface{}, 0, len(rows)+1)
	table = append(table, summaryHeader)
	for _, r := range rows {
		standing := "Low"
		if r.Good {
			standing = "Good"
		}
		table = append(table, []interface{}{r.EmployeeID, r.FullName, r.Present, r.Absent, r.Total, r.Rate, standing})
	}
	if err := writeRows(f, SummarySheet, table); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "G1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 28); err != nil {
		return err
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
