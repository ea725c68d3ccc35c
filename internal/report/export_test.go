package report_test

import (
	"bytes"

	"github.com/Jaychaware/hrms-lite/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

var _ = Describe("WriteWorkbook", func() {
	It("writes dashboard and summary sheets", func() {
		d := report.NewDashboard(2, 3, 2)
		rows := []report.EmployeeSummary{
			report.NewEmployeeSummary("E1", "Al", 2, 2),
			report.NewEmployeeSummary("E2", "Bea", 1, 0),
		}

		var buf bytes.Buffer
		Expect(report.WriteWorkbook(&buf, d, rows)).To(Succeed())

		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = f.Close() }()

		Expect(f.GetSheetList()).To(Equal([]string{report.DashboardSheet, report.SummarySheet}))

		cards, err := f.GetRows(report.DashboardSheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(cards).To(HaveLen(5))
		Expect(cards[1]).To(Equal([]string{"Total Employees", "2"}))
		Expect(cards[4]).To(Equal([]string{"Present Rate (%)", "66.7"}))

		table, err := f.GetRows(report.SummarySheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(table).To(HaveLen(3))
		Expect(table[0][0]).To(Equal("Employee ID"))
		Expect(table[1]).To(Equal([]string{"E1", "Al", "2", "0", "2", "100", "Good"}))
		Expect(table[2][6]).To(Equal("Low"))
	})

	It("writes only the header for an empty summary", func() {
		var buf bytes.Buffer
		Expect(report.WriteWorkbook(&buf, report.Dashboard{}, nil)).To(Succeed())

		f, err := excelize.OpenReader(&buf)
		Expect(err).NotTo(HaveOccurred())
		table, err := f.GetRows(report.SummarySheet)
		Expect(err).NotTo(HaveOccurred())
		Expect(table).To(HaveLen(1))
	})
})
